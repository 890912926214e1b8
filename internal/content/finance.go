package content

import (
	"errors"
	"math"
)

const (
	DepositRate = 0.10
	APR         = 0.0
	MinCredit   = 500.0
	MaxCredit   = 25000.0
)

var FinanceTerms = []int{6, 12, 24}

var ErrNegativeCost = errors.New("cost must not be negative")

type FinanceTerm struct {
	Months  int     `json:"months"`
	Monthly float64 `json:"monthly"`
}

type FinanceQuote struct {
	Cost    float64       `json:"cost"`
	Deposit float64       `json:"deposit"`
	Credit  float64       `json:"credit"`
	APR     float64       `json:"apr"`
	Terms   []FinanceTerm `json:"terms"`
	// Eligible reports whether the credit falls inside the lender's limits.
	Eligible bool `json:"eligible"`
}

// Calculate splits cost into a 10% deposit and interest-free monthly
// payments for each term, rounded to pence.
func Calculate(cost float64) (FinanceQuote, error) {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return FinanceQuote{}, ErrNegativeCost
	}
	deposit := pence(cost * DepositRate)
	credit := pence(cost - deposit)

	q := FinanceQuote{
		Cost:     pence(cost),
		Deposit:  deposit,
		Credit:   credit,
		APR:      APR,
		Eligible: credit >= MinCredit && credit <= MaxCredit,
	}
	for _, months := range FinanceTerms {
		monthly := 0.0
		if credit > 0 {
			monthly = pence(credit / float64(months))
		}
		q.Terms = append(q.Terms, FinanceTerm{Months: months, Monthly: monthly})
	}
	return q, nil
}

func pence(v float64) float64 {
	return math.Round(v*100) / 100
}

var FinanceFAQs = []FAQ{
	{"Who can apply for finance?", "Finance is available to UK residents aged 18 or over with a valid UK bank account and a regular income. Applications are subject to a credit check and approval by our finance partner, Deko Pay."},
	{"How do I apply?", "Choose your worktop and request a quote. Once you are happy with the price, select the finance option and complete a short online application."},
	{"What is the minimum/maximum credit amount?", "The minimum credit amount is £500 and the maximum is £25,000."},
	{"What happens if I want to return my worktop?", "If you cancel within the 14-day cooling-off period, your finance agreement is also cancelled and any payments refunded in full."},
	{"Can I pay off early?", "Yes, you can settle early at any time with no penalties or fees. Since the interest rate is 0%, you only pay the remaining balance."},
	{"Who do I contact about my finance agreement?", "Contact Deko Pay directly on 0800 500 3000 or via their online portal."},
}
