package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " issuegate ")
	t.Setenv("API_PORT", " 4000 ")

	root := New()
	api := root.Prefix("API_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root trims", conf: root, key: "APP_NAME", def: "x", want: "issuegate"},
		{name: "prefixed hit", conf: api, key: "PORT", def: "x", want: "4000"},
		{name: "missing returns default", conf: api, key: "MISSING", def: "defv", want: "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	api := New().Prefix("API_")
	t.Setenv("API_T1", "true")
	t.Setenv("API_T2", "1")
	t.Setenv("API_F1", "no")

	tests := []struct {
		name string
		key  string
		def  bool
		want bool
	}{
		{name: "true", key: "T1", def: false, want: true},
		{name: "1", key: "T2", def: false, want: true},
		{name: "no", key: "F1", def: true, want: false},
		{name: "missing keeps default", key: "MISSING", def: true, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := api.GetBool(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetInt(t *testing.T) {
	api := New().Prefix("API_")
	t.Setenv("API_N", "12")
	t.Setenv("API_BAD", "12x")

	if got := api.GetInt("N", 5); got != 12 {
		t.Fatalf("got %d", got)
	}
	if got := api.GetInt("BAD", 5); got != 5 {
		t.Fatalf("non-numeric should fall back, got %d", got)
	}
	if got := api.GetInt("MISSING", 7); got != 7 {
		t.Fatalf("missing should fall back, got %d", got)
	}
}
