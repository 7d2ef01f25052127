package maths

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagnitude(t *testing.T) {
	type testCase struct {
		name     string
		value    int64
		expected uint64
	}

	cases := []testCase{
		{
			name: "zero-value",
		},
		{
			name:     "positive",
			value:    42,
			expected: 42,
		},
		{
			name:     "negative",
			value:    -42,
			expected: 42,
		},
		{
			name:     "max",
			value:    math.MaxInt64,
			expected: math.MaxInt64,
		},
		{
			name:     "min",
			value:    math.MinInt64,
			expected: math.MaxInt64 + 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Magnitude(tc.value))
		})
	}
}

func TestMagnitudeNarrowTypes(t *testing.T) {
	require.Equal(t, uint64(128), Magnitude(int8(math.MinInt8)))
	require.Equal(t, uint64(2147483648), Magnitude(int32(math.MinInt32)))
	require.Equal(t, uint64(math.MaxUint64), Magnitude(uint64(math.MaxUint64)))
}

func TestDigitCount(t *testing.T) {
	type testCase struct {
		name            string
		m               uint64
		expectedDigits  int
		expectedDivisor uint64
	}

	cases := []testCase{
		{
			name:            "zero-value",
			expectedDigits:  1,
			expectedDivisor: 1,
		},
		{
			name:            "single",
			m:               9,
			expectedDigits:  1,
			expectedDivisor: 1,
		},
		{
			name:            "lower-boundary",
			m:               10,
			expectedDigits:  2,
			expectedDivisor: 10,
		},
		{
			name:            "upper-boundary",
			m:               99_999,
			expectedDigits:  5,
			expectedDivisor: 10_000,
		},
		{
			name:            "max-int32",
			m:               math.MaxInt32,
			expectedDigits:  10,
			expectedDivisor: 1_000_000_000,
		},
		{
			name:            "max-int64",
			m:               math.MaxInt64,
			expectedDigits:  19,
			expectedDivisor: 1_000_000_000_000_000_000,
		},
		{
			name:            "max-uint64",
			m:               math.MaxUint64,
			expectedDigits:  20,
			expectedDivisor: 10_000_000_000_000_000_000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			digits, divisor := DigitCount(tc.m)
			require.Equal(t, tc.expectedDigits, digits)
			require.Equal(t, tc.expectedDivisor, divisor)
		})
	}
}

func TestValidDigit(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		require.True(t, ValidDigit(digit))
	}

	require.False(t, ValidDigit(-1))
	require.False(t, ValidDigit(10))
}

func TestContainsDigit(t *testing.T) {
	type testCase struct {
		name     string
		value    int
		digit    int
		expected bool
	}

	cases := []testCase{
		{
			name:     "ZeroContainsZero",
			expected: true,
		},
		{
			name:  "ZeroNotContainsOne",
			digit: 1,
		},
		{
			name:     "SingleDigit",
			value:    7,
			digit:    7,
			expected: true,
		},
		{
			name:     "LeadingDigit",
			value:    70,
			digit:    7,
			expected: true,
		},
		{
			name:     "TrailingDigit",
			value:    17,
			digit:    7,
			expected: true,
		},
		{
			name:  "NotContained",
			value: 68,
			digit: 7,
		},
		{
			name:     "InnerZero",
			value:    101,
			expected: true,
		},
		{
			name:  "NoZero",
			value: 11,
		},
		{
			name:     "NegativeLeading",
			value:    -17,
			digit:    1,
			expected: true,
		},
		{
			name:     "NegativeTrailing",
			value:    -17,
			digit:    7,
			expected: true,
		},
		{
			name:     "MinInt",
			value:    math.MinInt32,
			digit:    8,
			expected: true,
		},
		{
			name:  "DigitTooLarge",
			value: 10,
			digit: 10,
		},
		{
			name:  "DigitNegative",
			value: 1,
			digit: -1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ContainsDigit(tc.value, tc.digit))
		})
	}
}

func TestContainsDigitMatchesDecimalString(t *testing.T) {
	for value := -20_000; value <= 20_000; value++ {
		decimal := strconv.Itoa(value)

		for digit := 0; digit <= 9; digit++ {
			expected := strings.ContainsRune(decimal, rune('0'+digit))
			require.Equal(t, expected, ContainsDigit(value, digit), "%d/%d", value, digit)
		}
	}
}

func TestContainsDigitSignIndependent(t *testing.T) {
	values := []int{0, 1, 17, 905, 123456789, math.MaxInt32}

	for _, value := range values {
		for digit := 0; digit <= 9; digit++ {
			require.Equal(t, ContainsDigit(value, digit), ContainsDigit(-value, digit), "%d/%d", value, digit)
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	type testCase struct {
		name     string
		value    int64
		expected bool
	}

	cases := []testCase{
		{
			name:     "Zero",
			expected: true,
		},
		{
			name:     "SingleDigit",
			value:    7,
			expected: true,
		},
		{
			name:     "EvenDigits",
			value:    1221,
			expected: true,
		},
		{
			name:     "OddDigits",
			value:    12321,
			expected: true,
		},
		{
			name:     "InnerZeros",
			value:    1001,
			expected: true,
		},
		{
			name:     "InnerZerosOdd",
			value:    10001,
			expected: true,
		},
		{
			name:  "TrailingZero",
			value: 10,
		},
		{
			name:  "InnerZerosMismatch",
			value: 1021,
		},
		{
			name:  "TwoDigits",
			value: 56,
		},
		{
			name:     "SevenDigits",
			value:    1233321,
			expected: true,
		},
		{
			name:     "TenDigits",
			value:    1234554321,
			expected: true,
		},
		{
			name:  "TenDigitsMismatch",
			value: 1111111112,
		},
		{
			name:     "NineteenDigits",
			value:    1234567890987654321,
			expected: true,
		},
		{
			name:  "Negative",
			value: -1111,
		},
		{
			name:  "NegativeSingleDigit",
			value: -1,
		},
		{
			name:  "MaxInt64",
			value: math.MaxInt64,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, IsPalindrome(tc.value))
		})
	}
}

func TestIsPalindromeTwentyDigits(t *testing.T) {
	require.True(t, IsPalindrome(uint64(12345678900987654321)))
	require.False(t, IsPalindrome(uint64(math.MaxUint64)))
}

func TestIsPalindromeMatchesReversal(t *testing.T) {
	reverse := func(m uint64) uint64 {
		var r uint64
		for ; m > 0; m /= 10 {
			r = r*10 + m%10
		}

		return r
	}

	for value := 0; value < 100_000; value++ {
		require.Equal(t, uint64(value) == reverse(uint64(value)), IsPalindrome(value), "%d", value)
	}
}
