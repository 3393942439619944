package model

import "time"

// RegistrationStatus is a registration record's normalized lifecycle status.
type RegistrationStatus string

// Registration status constants.
const (
	StatusApproved     RegistrationStatus = "Approved"
	StatusPending      RegistrationStatus = "Pending"
	StatusSuspended    RegistrationStatus = "Suspended"
	StatusBlacklisted  RegistrationStatus = "Blacklisted"
	StatusInactive     RegistrationStatus = "Inactive"
	StatusDeRegistered RegistrationStatus = "De-Registered"
	StatusOther        RegistrationStatus = "Other"
)

// TransactionRecord represents a single KYC registration record after
// normalization. Exactly one registration ID maps to one record per source
// dataset; duplicates after the first are discarded during normalization.
type TransactionRecord struct {
	SubmissionDate *time.Time
	ApprovalDate   *time.Time
	RegistrationID string
	RawStatus      string
	Status         RegistrationStatus

	// Derived fields, populated when both dates are present and the
	// record is approved.
	HoursToApproval float64
	Within24h       bool
	After24h        bool
}

// IsApproved reports whether the record's current status is Approved.
func (r *TransactionRecord) IsApproved() bool {
	return r.Status == StatusApproved
}

// IsPending reports whether the record is awaiting approval. The source
// systems report this as "Approval Pending" or "Resubmitted".
func (r *TransactionRecord) IsPending() bool {
	return r.Status == StatusPending
}

// RefundRecord represents a refund, bucketed solely by the date the refund
// was initiated.
type RefundRecord struct {
	InitiatedDate  time.Time
	RegistrationID string
}

// LookupEntry is a reference-sheet row resolved by the record linker.
// FunctionType is only populated for telemarketer-type reference data.
type LookupEntry struct {
	ApplicationDate *time.Time
	FunctionType    string
}
