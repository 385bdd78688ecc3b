package model

import "time"

// Expense is a per-function cost ledger entry.  It has no relationship to
// any booking; staff record one row per function date with the money
// received and the fixed set of cost line items.  All amounts are stored
// in cents (paise) to avoid floating point drift, matching how prices are
// handled elsewhere in the service.
//
// Fields:
//  ID                     – primary key identifier.
//  FunctionDate           – date of the function the costs belong to.
//  AdvanceCents           – advance received.
//  BalanceCents           – balance received.
//  DamageRecoveryCents    – recovered damage charges.
//  GensCents              – generator cost.
//  LadiesCents            – ladies' staff cost.
//  FlagCents              – flag/decoration cost.
//  WasteRoomCleaningCents – waste room cleaning cost.
//  ElectricianCents       – electrician cost.
//  RadioCents             – radio/sound cost.
//  LightCents             – lighting cost.
//  TotalCents             – grand total as entered by staff.
//  CreatedAt              – creation timestamp.
type Expense struct {
	ID                     int64     // expenses.id
	FunctionDate           time.Time // expenses.function_date (DATE)
	AdvanceCents           int64     // expenses.advance_cents
	BalanceCents           int64     // expenses.balance_cents
	DamageRecoveryCents    int64     // expenses.damage_recovery_cents
	GensCents              int64     // expenses.gens_cents
	LadiesCents            int64     // expenses.ladies_cents
	FlagCents              int64     // expenses.flag_cents
	WasteRoomCleaningCents int64     // expenses.waste_room_cleaning_cents
	ElectricianCents       int64     // expenses.electrician_cents
	RadioCents             int64     // expenses.radio_cents
	LightCents             int64     // expenses.light_cents
	TotalCents             int64     // expenses.total_cents
	CreatedAt              time.Time // expenses.created_at
}
