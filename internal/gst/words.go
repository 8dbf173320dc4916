package gst

import (
	"math"
	"strings"
)

// InvalidAmountSentinel is returned for negative or non-finite input to
// AmountInWords. The converter never panics.
const InvalidAmountSentinel = "Invalid Amount"

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a rupee amount as words in the Indian numbering
// system for the printed declaration line. Fractional paise round to the
// nearest whole rupee. Zero renders as "Zero Rupees Only"; any other valid
// amount uses the fixed "Indian Rupee ... Only" envelope, e.g.
// AmountInWords(100000) = "Indian Rupee One Lakh Only".
func AmountInWords(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return InvalidAmountSentinel
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only"
	}

	return "Indian Rupee " + indianGroups(rupees) + " Only"
}

// indianGroups renders a positive integer in the Indian numbering system:
// groups of two digits above the first three, so the units are hundred,
// thousand, lakh (1e5), and crore (1e7). The crore group recurses through
// the same decomposition, so 2e10 renders as "Two Thousand Crore" and no
// magnitude overruns the word tables.
func indianGroups(n int64) string {
	crore := n / 10000000
	lakh := n / 100000 % 100
	thousand := n / 1000 % 100
	remainder := n % 1000

	var parts []string
	if crore > 0 {
		parts = append(parts, indianGroups(crore)+" Crore")
	}
	if lakh > 0 {
		parts = append(parts, underHundred(lakh)+" Lakh")
	}
	if thousand > 0 {
		parts = append(parts, underHundred(thousand)+" Thousand")
	}
	if remainder > 0 {
		parts = append(parts, underThousand(remainder))
	}

	return strings.Join(parts, " ")
}

func underHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	word := tensWords[n/10]
	if n%10 != 0 {
		word += " " + onesWords[n%10]
	}
	return word
}

func underThousand(n int64) string {
	if n < 100 {
		return underHundred(n)
	}
	word := onesWords[n/100] + " Hundred"
	if n%100 != 0 {
		word += " " + underHundred(n%100)
	}
	return word
}
