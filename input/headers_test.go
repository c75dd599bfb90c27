package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHeaders(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		wantHeaders []string
		wantIsData  bool
	}{
		{
			name:        "Valid headers",
			input:       []string{"Name", "Age", "Email", "Phone"},
			wantHeaders: []string{"name", "age", "email", "phone"},
		},
		{
			name:        "Numeric data",
			input:       []string{"123", "456", "789", "101"},
			wantHeaders: []string{"column_1", "column_2", "column_3", "column_4"},
			wantIsData:  true,
		},
		{
			name:        "Date data",
			input:       []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			wantHeaders: []string{"column_1", "column_2", "column_3"},
			wantIsData:  true,
		},
		{
			name:        "Mixed headers with special characters",
			input:       []string{"User Name!", "Age#", "Email@", "Phone$"},
			wantHeaders: []string{"user_name", "age", "email", "phone"},
		},
		{
			name:        "Duplicate headers",
			input:       []string{"Name", "Name", "Name", "Age"},
			wantHeaders: []string{"name", "name_1", "name_2", "age"},
		},
		{
			name:        "Empty headers",
			input:       []string{"", "", "", ""},
			wantHeaders: []string{"column_1", "column_2", "column_3", "column_4"},
			wantIsData:  true,
		},
		{
			name:        "Snake case",
			input:       []string{"product_name", "sales_quantity", "unit_price", "total_revenue"},
			wantHeaders: []string{"product_name", "sales_quantity", "unit_price", "total_revenue"},
		},
		{
			name:        "Half header like",
			input:       []string{"John", "30", "john@email.com", "123-456-7890"},
			wantHeaders: []string{"john", "column_2", "john_email_com", "column_4"},
		},
		{
			name:        "Cyrillic headers are transliterated",
			input:       []string{"Город", "Amount"},
			wantHeaders: []string{"gorod", "amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeHeaders(tt.input)
			require.NotNil(t, got)

			assert.Equal(t, tt.wantHeaders, got.Headers)
			assert.Equal(t, tt.wantIsData, got.FirstRowIsData)
			assert.Equal(t, tt.input, got.FirstDataRow)
		})
	}

	assert.Nil(t, AnalyzeHeaders(nil))
}

func TestIsLikelyHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty string", "", false},
		{"Simple header", "Name", true},
		{"Header with space", "User Name", true},
		{"Number", "123", false},
		{"Date", "2024-01-01", false},
		{"Datetime", "2024-01-01 10:00:00", false},
		{"Special characters", "User#Name!", true},
		{"Only special chars", "###", false},
		{"Mixed content", "User123", true},
		{"Rus", "колонка1", true},
		{"Email", "test@email.com", true},
		{"Phone", "+1-234-567-8900", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLikelyHeader(tt.input), tt.input)
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"No duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"Two duplicates", []string{"a", "a"}, []string{"a", "a_1"}},
		{"Suffix collision", []string{"a", "a_1", "a"}, []string{"a", "a_1", "a_2"}},
		{"Empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateHeaders(tt.input))
		})
	}
}
