package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	thirty  = decimal.NewFromInt(30)

	// At most 10% of a single payment goes to interest.
	maxInterestShare = decimal.New(1, -1)

	// Fallback split when the computed interest is degenerate.
	fallbackPrincipalShare = decimal.New(8, -1)
	fallbackInterestShare  = decimal.New(2, -1)

	// Minimum share of the balance a projected payment pays down.
	principalFloorShare = decimal.New(5, -2)
)

// PaymentSplit is the division of a loan payment.
//
// Principal and Interest sum to the payment amount unless the principal was
// clamped to the remaining loan balance. In that case Overpayment holds the
// part of the payment that exceeded the balance. It is reported to the
// caller, not refunded.
type PaymentSplit struct {
	Principal   decimal.Decimal
	Interest    decimal.Decimal
	Overpayment decimal.Decimal
}

// SplitLoanPayment divides a payment against a loan into its principal and
// interest portions.
//
// The interest rate is a monthly percentage, broken down to a daily rate. The
// accrual window is the number of days since the previous payment, clamped to
// [1, 60] so a data entry gap cannot compound interest without bound. Without
// a previous payment a full month of 30 days is assumed.
func SplitLoanPayment(loanBalance, interestRate, payment decimal.Decimal, date time.Time, lastPayment *time.Time) PaymentSplit {
	dailyRate := interestRate.Div(hundred).Div(thirty)

	days := int64(30)
	if lastPayment != nil {
		days = int64(date.Sub(*lastPayment).Hours() / 24)
		if days < 1 {
			days = 1
		}
		if days > 60 {
			days = 60
		}
	}

	interest := loanBalance.Mul(dailyRate).Mul(decimal.NewFromInt(days))
	maxInterest := payment.Mul(maxInterestShare)
	if interest.GreaterThan(maxInterest) {
		interest = maxInterest
	}

	principal := payment.Sub(interest)
	if principal.IsNegative() {
		principal = payment.Mul(fallbackPrincipalShare)
		interest = payment.Mul(fallbackInterestShare)
	}

	var overpayment decimal.Decimal
	if principal.GreaterThan(loanBalance) {
		overpayment = principal.Sub(loanBalance)
		principal = loanBalance
	}

	return PaymentSplit{Principal: principal, Interest: interest, Overpayment: overpayment}
}
