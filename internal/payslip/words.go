package payslip

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// AmountInWords renders an integer rupee amount in English using the
// Indian numbering system (lakh, thousand, hundred).
// 150000 -> "one lakh fifty thousand only", 250000 pluralizes the lakh
// chunk. Zero is the bare word "zero"; negative amounts get a leading
// "minus".
func AmountInWords(n int64) string {
	if n < 0 {
		return "minus " + AmountInWords(-n)
	}
	if n == 0 {
		return "zero"
	}

	var parts []string

	if lakhs := n / 100000; lakhs > 0 {
		suffix := "lakh"
		if lakhs > 1 {
			suffix = "lakhs"
		}
		parts = append(parts, underThousand(lakhs)+" "+suffix)
		n %= 100000
	}

	if thousands := n / 1000; thousands > 0 {
		parts = append(parts, underThousand(thousands)+" thousand")
		n %= 1000
	}

	if n > 0 {
		parts = append(parts, underThousand(n))
	}

	return strings.Join(parts, " ") + " only"
}

// ToTitleWords title-cases a stored words string for display surfaces.
// Storage keeps the lowercase canonical form.
func ToTitleWords(words string) string {
	return titleCaser.String(words)
}

func underThousand(n int64) string {
	if n >= 100 {
		s := underThousand(n/100) + " hundred"
		if rem := n % 100; rem > 0 {
			s += " and " + underHundred(rem)
		}
		return s
	}
	return underHundred(n)
}

func underHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	s := tensWords[n/10]
	if unit := n % 10; unit > 0 {
		s += "-" + onesWords[unit]
	}
	return s
}
