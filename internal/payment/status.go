package payment

import (
	"strings"

	"fitcircle/internal/apperror"
)

type Status string

const (
	StatusPending           Status = "pending"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
	StatusCancelled         Status = "cancelled"
	StatusRefunded          Status = "refunded"
	StatusPartiallyRefunded Status = "partially_refunded"
)

var statusNames = map[Status]string{
	StatusPending:           "Pending",
	StatusCompleted:         "Completed",
	StatusFailed:            "Failed",
	StatusCancelled:         "Cancelled",
	StatusRefunded:          "Refunded",
	StatusPartiallyRefunded: "Partially refunded",
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) DisplayName() string { return statusNames[s] }

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == StatusFailed || s == StatusCancelled || s == StatusRefunded
}

type Method string

const (
	MethodCreditCard   Method = "credit_card"
	MethodDebitCard    Method = "debit_card"
	MethodApplePay     Method = "apple_pay"
	MethodGooglePay    Method = "google_pay"
	MethodBankTransfer Method = "bank_transfer"
)

var methodNames = map[Method]string{
	MethodCreditCard:   "Credit card",
	MethodDebitCard:    "Debit card",
	MethodApplePay:     "Apple Pay",
	MethodGooglePay:    "Google Pay",
	MethodBankTransfer: "Bank transfer",
}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := methodNames[m]; !ok {
		return "", apperror.ValidationField("payment.method", "method", "unknown payment method %q", s)
	}
	return m, nil
}

func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

func (m Method) DisplayName() string { return methodNames[m] }

type RefundReason string

const (
	RefundCustomerRequest    RefundReason = "customer_request"
	RefundServiceNotProvided RefundReason = "service_not_provided"
	RefundTechnicalIssue     RefundReason = "technical_issue"
	RefundDuplicate          RefundReason = "duplicate"
	RefundFraud              RefundReason = "fraud"
	RefundOther              RefundReason = "other"
)

var refundReasons = map[RefundReason]bool{
	RefundCustomerRequest:    true,
	RefundServiceNotProvided: true,
	RefundTechnicalIssue:     true,
	RefundDuplicate:          true,
	RefundFraud:              true,
	RefundOther:              true,
}

func ParseRefundReason(s string) (RefundReason, error) {
	r := RefundReason(strings.ToLower(strings.TrimSpace(s)))
	if !refundReasons[r] {
		return "", apperror.ValidationField("payment.refund", "reason", "unknown refund reason %q", s)
	}
	return r, nil
}
