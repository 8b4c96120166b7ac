package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 200}
	tests := []struct {
		in   int
		want int
	}{
		{0, 50},
		{-3, 50},
		{10, 10},
		{500, 200},
	}
	for _, tt := range tests {
		if got := ClampPageSize(tt.in, cfg); got != tt.want {
			t.Errorf("ClampPageSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestNormalizeOrderBy(t *testing.T) {
	cfg := OrderByConfig{Allowed: []string{"key", "cost"}}
	tests := []struct {
		in      string
		want    OrderBy
		wantErr bool
	}{
		{in: "", want: OrderBy{}},
		{in: "key", want: OrderBy{Field: "key"}},
		{in: "cost desc", want: OrderBy{Field: "cost", Desc: true}},
		{in: "cost ASC", want: OrderBy{Field: "cost"}},
		{in: "shots", wantErr: true},
		{in: "cost sideways", wantErr: true},
		{in: "cost desc key", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NormalizeOrderBy(tt.in, cfg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeOrderBy(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NormalizeOrderBy(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
	}

	got, err := NormalizeOrderBy("", OrderByConfig{Default: "key", Allowed: []string{"key"}})
	if err != nil || got.Field != "key" {
		t.Fatalf("default order = %+v, %v", got, err)
	}
}

func TestOffsetTokens(t *testing.T) {
	if EncodeOffset(0) != "" {
		t.Fatal("expected empty token for offset 0")
	}
	for _, offset := range []int{0, 1, 50, 1234} {
		got, err := DecodeOffset(EncodeOffset(offset))
		if err != nil || got != offset {
			t.Fatalf("offset %d round trip = %d, %v", offset, got, err)
		}
	}
	for _, bad := range []string{"!!", "b2Zmc2V0Oi0x", "bm9wZQ"} {
		if _, err := DecodeOffset(bad); err == nil {
			t.Errorf("DecodeOffset(%q) expected error", bad)
		}
	}
}
