package metadata

import "testing"

func TestOptionMetadata_DefaultValues(t *testing.T) {
	tests := []struct {
		name       string
		defaultVal any
		wantBool   bool
		wantString string
	}{
		{"nil", nil, false, ""},
		{"true", true, true, ""},
		{"false", false, false, ""},
		{"string", "snol.yaml", false, "snol.yaml"},
		{"other type", 3, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			om := &OptionMetadata{Name: "opt", DefaultValue: tt.defaultVal}
			if got := om.DefaultValueAsBool(); got != tt.wantBool {
				t.Errorf("DefaultValueAsBool() = %v, want %v", got, tt.wantBool)
			}
			if got := om.DefaultValueAsString(); got != tt.wantString {
				t.Errorf("DefaultValueAsString() = %q, want %q", got, tt.wantString)
			}
		})
	}
}
