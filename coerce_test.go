package envjson

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected any
	}{
		{
			name:     "true literal",
			raw:      "true",
			expected: true,
		},
		{
			name:     "false literal",
			raw:      "false",
			expected: false,
		},
		{
			name:     "capitalized booleans stay strings",
			raw:      "True",
			expected: "True",
		},
		{
			name:     "integer",
			raw:      "42",
			expected: int64(42),
		},
		{
			name:     "negative integer",
			raw:      "-7",
			expected: int64(-7),
		},
		{
			name:     "explicitly signed integer",
			raw:      "+7",
			expected: int64(7),
		},
		{
			name:     "integer with leading zeros",
			raw:      "007",
			expected: int64(7),
		},
		{
			name:     "zero",
			raw:      "0",
			expected: int64(0),
		},
		{
			name:     "float",
			raw:      "3.14",
			expected: 3.14,
		},
		{
			name:     "negative float",
			raw:      "-0.5",
			expected: -0.5,
		},
		{
			name:     "exponent notation",
			raw:      "1e3",
			expected: 1000.0,
		},
		{
			name:     "float without integer part",
			raw:      ".5",
			expected: 0.5,
		},
		{
			name:     "integer wider than 64 bits becomes a float",
			raw:      "92233720368547758080",
			expected: 92233720368547758080.0,
		},
		{
			name:     "NaN stays a string",
			raw:      "NaN",
			expected: "NaN",
		},
		{
			name:     "infinity stays a string",
			raw:      "Inf",
			expected: "Inf",
		},
		{
			name:     "negative infinity stays a string",
			raw:      "-Infinity",
			expected: "-Infinity",
		},
		{
			name:     "hex float stays a string",
			raw:      "0x1p-2",
			expected: "0x1p-2",
		},
		{
			name:     "uppercase hex float stays a string",
			raw:      "0X1P2",
			expected: "0X1P2",
		},
		{
			name:     "signed hex float stays a string",
			raw:      "-0x1.8p1",
			expected: "-0x1.8p1",
		},
		{
			name:     "underscored integer stays a string",
			raw:      "1_000",
			expected: "1_000",
		},
		{
			name:     "underscored float stays a string",
			raw:      "1_000.5",
			expected: "1_000.5",
		},
		{
			name:     "plain string",
			raw:      "localhost",
			expected: "localhost",
		},
		{
			name:     "number with trailing text stays a string",
			raw:      "12abc",
			expected: "12abc",
		},
		{
			name:     "empty string",
			raw:      "",
			expected: "",
		},
		{
			name:     "whitespace is not trimmed",
			raw:      " 42",
			expected: " 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := coerce(tt.raw)
			if result != tt.expected {
				t.Errorf("coerce(%q) = %v (%T), want %v (%T)",
					tt.raw, result, result, tt.expected, tt.expected)
			}
		})
	}
}
