package classify

import "testing"

func TestEngineClass(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		expected string
	}{
		{"WAP-7_Ghaziabad", "Electrics", "wap7"},
		{"wdm 3a", "Diesels", "wdm3a"},
		{"WAG9H_Loco", "", "wag9h"},
		{"EMU_9car", "Mumbai", "emu"},
		{"MEMU_Rake", "", "memu"},
		{"Mystery_Loco", "", ""},
	}

	for _, test := range tests {
		if got := EngineClass(test.name, test.folder); got != test.expected {
			t.Errorf("EngineClass(%q, %q) = %q, expected %q",
				test.name, test.folder, got, test.expected)
		}
	}
}

func TestParseEngineTokens(t *testing.T) {
	attrs := ParseEngineTokens("WAP-7_Ghaziabad", "")
	if attrs.Class != "wap" || attrs.Series != "7" || attrs.ClassSeries != "wap7" {
		t.Errorf("unexpected attrs: %+v", attrs)
	}
	if attrs.Family != "" {
		t.Errorf("classed loco must not carry a family, got %q", attrs.Family)
	}
	if attrs.Traction != TractionElectric {
		t.Errorf("wap is electric, got %v", attrs.Traction)
	}

	attrs = ParseEngineTokens("DEMU_3car", "")
	if attrs.Family != "demu" {
		t.Errorf("expected demu family, got %+v", attrs)
	}
	if attrs.Traction != TractionDiesel {
		t.Errorf("demu is diesel, got %v", attrs.Traction)
	}
}

func TestEngineRole(t *testing.T) {
	tests := []struct {
		name     string
		expected Role
	}{
		{"WAP7_Ghaziabad", RolePassenger},
		{"WDP4_Loco", RolePassenger},
		{"WAG9_Freight", RoleFreight},
		{"WDG4_Twin", RoleFreight},
		{"EMU_Mumbai", RolePassenger},
		{"Mystery", RoleUnknown},
	}

	for _, test := range tests {
		if got := EngineRole(test.name, ""); got != test.expected {
			t.Errorf("EngineRole(%q) = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestWagonRole(t *testing.T) {
	tests := []struct {
		name     string
		expected Role
	}{
		{"ICF_SL_Blue", RolePassenger},
		{"LHB_3A_Raj", RolePassenger},
		{"BOXN_Loaded", RoleFreight},
		{"BCNA_Empty", RoleFreight},
		{"BrakeVan_Red", RoleCaboose},
		{"SLR_ICF", RoleCaboose},
		{"HPCV_Parcel", RoleParcel},
		{"CONCOR_BLC_Flat", RoleContainer},
		{"NMG_AutoCarrier", RoleFreight},
		{"Unmarked_Stock", RoleUnknown},
	}

	for _, test := range tests {
		if got := WagonRole(test.name, ""); got != test.expected {
			t.Errorf("WagonRole(%q) = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestCoachType(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ICF_SL_01", "sl"},
		{"LHB_ACCC", "accc"},
		{"LHB_CC_Shatabdi", "cc"},
		{"ICF_Sleeper_Blue", "sl"},
		{"Generator_Car", "eog"},
		{"BOXN", ""},
	}

	for _, test := range tests {
		if got := CoachType(test.name, ""); got != test.expected {
			t.Errorf("CoachType(%q) = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestParseWagonTokens(t *testing.T) {
	attrs := ParseWagonTokens("LHB_3A_Rajdhani", "")
	if attrs.Stock != "lhb" {
		t.Errorf("expected lhb stock, got %+v", attrs)
	}
	if attrs.Coach != "3a" {
		t.Errorf("expected 3a coach, got %+v", attrs)
	}
	if attrs.SetHint != "rajdhani" {
		t.Errorf("expected rajdhani hint, got %+v", attrs)
	}

	attrs = ParseWagonTokens("CONCOR_BLC", "")
	if attrs.ContainerVendor != "concor" || attrs.Freight != "blc" {
		t.Errorf("unexpected container attrs: %+v", attrs)
	}

	attrs = ParseWagonTokens("BVZI_GuardVan", "")
	if !attrs.IsCaboose {
		t.Errorf("expected caboose, got %+v", attrs)
	}
}

func TestFreightCodeBoundaries(t *testing.T) {
	// boxnhl must not be read as boxn plus trailing noise
	attrs := ParseWagonTokens("BOXNHL_Rake", "")
	if attrs.Freight != "boxnhl" {
		t.Errorf("expected boxnhl, got %q", attrs.Freight)
	}

	// An embedded run without boundaries must not match
	attrs = ParseWagonTokens("xboxnx", "")
	if attrs.Freight != "" {
		t.Errorf("expected no freight code in %q, got %q", "xboxnx", attrs.Freight)
	}
}

func TestIsPseudoReference(t *testing.T) {
	tests := []struct {
		shape    string
		expected bool
	}{
		{"AI_Horn", true},
		{"horn_loud", true},
		{"SMS_sound", true},
		{"Smoke_Effect", true},
		{"WAP7_Ghaziabad", false},
		{"BOXN", false},
	}

	for _, test := range tests {
		if got := IsPseudoReference(test.shape); got != test.expected {
			t.Errorf("IsPseudoReference(%q) = %v, expected %v", test.shape, got, test.expected)
		}
	}
}
