package countries

import "testing"

func TestDetectCodeKind(t *testing.T) {
	tests := []struct {
		code   string
		want   CodeKind
		wantOK bool
	}{
		{"124", CodeNumeric, true},
		{"036", CodeNumeric, true},
		{"1", CodeNumeric, true},
		{"1234", CodeNumeric, true},
		{"CA", CodeAlpha2, true},
		{"ca", CodeAlpha2, true},
		{"CAN", CodeAlpha3, true},
		{"12a", CodeAlpha3, true},
		{"", 0, false},
		{"C", 0, false},
		{"CANA", 0, false},
		{"-12", CodeAlpha3, true},
	}

	for _, tt := range tests {
		got, ok := DetectCodeKind(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DetectCodeKind(%q) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCodeKindString(t *testing.T) {
	for kind, want := range map[CodeKind]string{
		CodeAlpha2:  "cca2",
		CodeAlpha3:  "cca3",
		CodeNumeric: "ccn3",
		CodeIOC:     "cioc",
		CodeKind(0): "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("CodeKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
