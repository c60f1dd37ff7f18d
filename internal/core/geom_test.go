package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		ok       bool
	}{
		{"easy", Easy, true},
		{"medium", Medium, true},
		{"normal", Medium, true},
		{"hard", Hard, true},
		{"hell", Hell, true},
		{"", Medium, true},
		{"nightmare", Medium, false},
	}

	for _, tc := range tests {
		d, err := ParseDifficulty(tc.in)
		if d != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, d, tc.expected)
		}
		if tc.ok && err != nil {
			t.Errorf("ParseDifficulty(%q) returned unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseDifficulty(%q) should return an error", tc.in)
		}
	}
}

func TestDifficultyClamp(t *testing.T) {
	if Difficulty(-1).Clamp() != Easy {
		t.Error("negative difficulty should clamp to Easy")
	}
	if Difficulty(99).Clamp() != Hell {
		t.Error("out-of-range difficulty should clamp to Hell")
	}
	if Medium.Clamp() != Medium {
		t.Error("valid difficulty should be unchanged")
	}
}
