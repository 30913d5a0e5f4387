package pages

// FormatPageNumber renders num according to a numbering pattern: "1" (or
// unrecognized) for Arabic, "i"/"I" for lowercase/uppercase Roman, "a"/"A"
// for lowercase/uppercase letters.
func FormatPageNumber(num int, pattern string) string {
	switch pattern {
	case "i":
		return formatRoman(num, false)
	case "I":
		return formatRoman(num, true)
	case "a":
		return formatLetter(num, 'a')
	case "A":
		return formatLetter(num, 'A')
	default:
		return formatArabic(num)
	}
}

func formatArabic(num int) string {
	if num <= 0 {
		return "0"
	}
	var digits []byte
	for num > 0 {
		digits = append([]byte{byte('0' + num%10)}, digits...)
		num /= 10
	}
	return string(digits)
}

func formatRoman(num int, upper bool) string {
	if num <= 0 || num > 3999 {
		return formatArabic(num)
	}
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"m", "cm", "d", "cd", "c", "xc", "l", "xl", "x", "ix", "v", "iv", "i"}
	if upper {
		symbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	}
	var out string
	for i, v := range values {
		for num >= v {
			out += symbols[i]
			num -= v
		}
	}
	return out
}

func formatLetter(num int, base byte) string {
	if num <= 0 {
		return string(base)
	}
	var out string
	for num > 0 {
		num--
		out = string(base+byte(num%26)) + out
		num /= 26
	}
	return out
}
