package cases

// weightScale turns percentage chances with two decimals into integer weights
const weightScale = 100

// Error context
const (
	ErrContextFailedToLoadCatalog = "failed to load case catalog"
	ErrContextFailedToGetUser     = "failed to get user"
	ErrContextFailedToBeginTx     = "failed to begin case transaction"
	ErrContextFailedToDraw        = "failed to draw reward"
	ErrContextFailedToApply       = "failed to apply reward"
	ErrContextFailedToCommitTx    = "failed to commit case transaction"
	ErrContextFailedToCheckFree   = "failed to check free case cooldown"
)

// Catalog validation errors
const (
	ErrMsgEmptyCatalog   = "catalog has no cases"
	ErrMsgDuplicateCase  = "duplicate case type %q"
	ErrMsgNoRewards      = "case %q has no reward with a positive chance"
	ErrMsgUnknownKind    = "case %q reward %q has unknown kind %q"
	ErrMsgNegativeAmount = "case %q has a negative cost or reward value"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Case catalog loaded"
	LogMsgCaseOpened    = "Case opened"
)

// History details keys
const (
	DetailCaseType = "case_type"
	DetailReward   = "reward"
)
