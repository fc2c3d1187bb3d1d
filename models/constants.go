package models

// Transaction types, from the sender's perspective
const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// Timeline legs
const (
	LegOutgoing = "outgoing"
	LegIncoming = "incoming"
)

// Distribution columns
const (
	ColumnPurpose  = "purpose"
	ColumnType     = "type"
	ColumnSender   = "sender"
	ColumnReceiver = "receiver"
)

// Unknown is the sentinel for an account identity that cannot be resolved
// anywhere in the full ledger.
const Unknown = "Unknown"
