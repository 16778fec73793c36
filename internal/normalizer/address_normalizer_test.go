package normalizer

import (
	"strings"
	"testing"
)

func TestNormalize_Rules(t *testing.T) {
	n := NewAddressNormalizer()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Country_Prefix_Stripped",
			input:    "대한민국 서울특별시 강남구 테헤란로 427",
			expected: "서울특별시 강남구 테헤란로 427",
		},
		{
			name:     "English_Country_Prefix_Stripped",
			input:    "Republic of Korea 서울특별시 중구 세종대로 110",
			expected: "서울특별시 중구 세종대로 110",
		},
		{
			name:     "Bundang_Special_Case",
			input:    "경기도 성남시 분당구 정자동 178-1",
			expected: "경기 성남시 분당구 정자동 178-1",
		},
		{
			name:     "Province_Short_Form",
			input:    "경기도 수원시 팔달구 효원로 241",
			expected: "경기 수원시 팔달구 효원로 241",
		},
		{
			name:     "Whitespace_Trimmed",
			input:    "  서울특별시 종로구 사직로 161  ",
			expected: "서울특별시 종로구 사직로 161",
		},
		{
			name:     "Empty_Passthrough",
			input:    "",
			expected: "",
		},
		{
			name:     "Already_Normalized_Unchanged",
			input:    "경기 성남시 분당구 판교로 235",
			expected: "경기 성남시 분당구 판교로 235",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := n.Normalize(tc.input)
			if result != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

// TestNormalize_SpecialCaseOrdering checks the 분당구 rewrite wins over the
// general province collapse.
func TestNormalize_SpecialCaseOrdering(t *testing.T) {
	n := NewAddressNormalizer()

	result := n.Normalize("대한민국 경기도 성남시 분당구 정자동")

	if !strings.Contains(result, "경기 성남시 분당구") {
		t.Errorf("expected result to contain %q, got %q", "경기 성남시 분당구", result)
	}
	if strings.Contains(result, "경기도") {
		t.Errorf("expected no %q left in result, got %q", "경기도", result)
	}
	if strings.Contains(result, "대한민국") {
		t.Errorf("expected country prefix stripped, got %q", result)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewAddressNormalizer()

	inputs := []string{
		"대한민국 경기도 성남시 분당구 정자동",
		"경기도 고양시 일산동구 중앙로 1275",
		"서울특별시 강남구 테헤란로 427",
		"  부산광역시 해운대구 우동  ",
		"",
	}

	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
