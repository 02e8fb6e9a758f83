package handlers

import "testing"

func TestParseNear(t *testing.T) {
	lng, lat, err := parseNear("2.3522,48.8566")
	if err != nil {
		t.Fatalf("parseNear returned error: %v", err)
	}
	if lng != 2.3522 || lat != 48.8566 {
		t.Fatalf("expected lng,lat order, got lng=%v lat=%v", lng, lat)
	}
}

func TestParseNearTrimsWhitespace(t *testing.T) {
	lng, lat, err := parseNear(" -0.1276 , 51.5072 ")
	if err != nil {
		t.Fatalf("parseNear returned error: %v", err)
	}
	if lng != -0.1276 || lat != 51.5072 {
		t.Fatalf("unexpected coordinates lng=%v lat=%v", lng, lat)
	}
}

func TestParseNearRejectsMalformedValues(t *testing.T) {
	cases := []string{"", "2.35", "2.35,48.85,1", "east,north", "200,10", "10,95"}
	for _, value := range cases {
		if _, _, err := parseNear(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseFeedParamsDefaults(t *testing.T) {
	limit, skip, err := parseFeedParams("", "")
	if err != nil {
		t.Fatalf("parseFeedParams returned error: %v", err)
	}
	if limit != 20 || skip != 0 {
		t.Fatalf("expected defaults 20/0, got %d/%d", limit, skip)
	}
}

func TestParseFeedParamsRejectsBadValues(t *testing.T) {
	cases := [][2]string{{"0", ""}, {"-1", ""}, {"abc", ""}, {"", "-5"}, {"", "x"}}
	for _, c := range cases {
		if _, _, err := parseFeedParams(c[0], c[1]); err == nil {
			t.Fatalf("expected error for limit=%q skip=%q", c[0], c[1])
		}
	}
}
