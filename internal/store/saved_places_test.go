package store

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smifffystuff/paw-places/internal/models"
)

func TestNewSavedPlaceDocumentDefaults(t *testing.T) {
	document := newSavedPlaceDocument("user_1", SavedPlaceInput{
		Name: "  Barkside Café  ",
	})

	if document.Name != "Barkside Café" {
		t.Fatalf("expected trimmed name, got %q", document.Name)
	}
	if document.Notes != "" || document.Tags != "" {
		t.Fatalf("expected empty notes/tags defaults, got notes=%q tags=%q", document.Notes, document.Tags)
	}
	if document.Visited {
		t.Fatal("expected visited=false on creation")
	}
	if document.CreatedAt == "" || document.CreatedAt != document.UpdatedAt {
		t.Fatalf("expected createdAt == updatedAt, got %q / %q", document.CreatedAt, document.UpdatedAt)
	}
	if document.UserID != "user_1" {
		t.Fatalf("expected owner to be set, got %q", document.UserID)
	}
}

func TestNewSavedPlaceDocumentKeepsProvidedFields(t *testing.T) {
	document := newSavedPlaceDocument("user_1", SavedPlaceInput{
		Name:  "Barkside Café",
		Notes: " water bowls outside ",
		Tags:  "patio, shady",
	})

	if document.Notes != "water bowls outside" {
		t.Fatalf("expected trimmed notes, got %q", document.Notes)
	}
	if document.Tags != "patio, shady" {
		t.Fatalf("expected tags preserved, got %q", document.Tags)
	}
}

func TestBuildSavedPlaceSetOnlyRecognizedFields(t *testing.T) {
	visited := true
	set := buildSavedPlaceSet(SavedPlaceUpdate{Visited: &visited}, "2024-05-01T10:00:00.000Z")

	if len(set) != 2 {
		t.Fatalf("expected visited + updatedAt only, got %v", set)
	}
	if set["visited"] != true {
		t.Fatalf("expected visited=true in set document, got %v", set["visited"])
	}
	if set["updatedAt"] != "2024-05-01T10:00:00.000Z" {
		t.Fatalf("expected updatedAt to be re-stamped, got %v", set["updatedAt"])
	}
}

func TestBuildSavedPlaceSetTrimsStringFields(t *testing.T) {
	name := "  New Name "
	tags := " patio "
	set := buildSavedPlaceSet(SavedPlaceUpdate{Name: &name, Tags: &tags}, "2024-05-01T10:00:00.000Z")

	if set["name"] != "New Name" {
		t.Fatalf("expected trimmed name, got %v", set["name"])
	}
	if set["tags"] != "patio" {
		t.Fatalf("expected trimmed tags, got %v", set["tags"])
	}
	if _, ok := set["visited"]; ok {
		t.Fatal("visited was not provided and must not be written")
	}
}

func TestSavedPlaceUpdateIsEmpty(t *testing.T) {
	if !(SavedPlaceUpdate{}).IsEmpty() {
		t.Fatal("zero update must report empty")
	}

	notes := ""
	if (SavedPlaceUpdate{Notes: &notes}).IsEmpty() {
		t.Fatal("explicit empty notes is still a recognized update")
	}
}

func TestNormalizeSavedPlaceDocument(t *testing.T) {
	id := primitive.NewObjectID()
	dto := normalizeSavedPlaceDocument(models.SavedPlace{
		ID:        id,
		UserID:    "user_1",
		Name:      "Barkside Café",
		Tags:      "patio, shady",
		Visited:   true,
		CreatedAt: "2024-05-01T10:00:00.000Z",
		UpdatedAt: "2024-05-02T10:00:00.000Z",
	})

	if dto.ID != id.Hex() {
		t.Fatalf("expected hex id %q, got %q", id.Hex(), dto.ID)
	}
	if dto.Name != "Barkside Café" || dto.Tags != "patio, shady" || !dto.Visited {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.CreatedAt != "2024-05-01T10:00:00.000Z" || dto.UpdatedAt != "2024-05-02T10:00:00.000Z" {
		t.Fatalf("timestamps must pass through unchanged: %+v", dto)
	}
}

func TestUpdateSavedPlaceRejectsMalformedID(t *testing.T) {
	name := "x"
	_, err := UpdateSavedPlace(context.Background(), nil, "user_1", "not-a-hex-id", SavedPlaceUpdate{Name: &name})
	if err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID before any store access, got %v", err)
	}
}

func TestDeleteSavedPlaceRejectsMalformedID(t *testing.T) {
	deleted, err := DeleteSavedPlace(context.Background(), nil, "user_1", "nope")
	if err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID before any store access, got %v", err)
	}
	if deleted {
		t.Fatal("malformed id must never report a deletion")
	}
}

func TestSavedPlaceTimestampIsSortableUTC(t *testing.T) {
	stamp := savedPlaceTimestamp()
	if len(stamp) != len("2006-01-02T15:04:05.000Z") {
		t.Fatalf("timestamp must be fixed width for lexicographic sorting, got %q", stamp)
	}
	if stamp[len(stamp)-1] != 'Z' {
		t.Fatalf("timestamp must be UTC, got %q", stamp)
	}
}
