package pricing

// Field key suffixes. A row's keys are the slot number followed by a suffix, e.g. "12q".
const (
	SuffixQuality         = "q"
	SuffixGold            = "g"
	SuffixSilver          = "s"
	SuffixCopper          = "c"
	SuffixIron            = "i"
	SuffixMinimumPurchase = "p"
	SuffixRemove          = "remove"
)

// Form-level keys
const (
	KeySort     = "sort"
	KeyNew      = "new"
	KeyPage     = "page"
	KeyTemplate = "template"
	KeyMaterial = "material"
	KeyQuery    = "q"
)

// Field names used in validation failures and metrics
const (
	FieldQuality         = "quality"
	FieldPrice           = "price"
	FieldMinimumPurchase = "minimum_purchase"
)

// Player-facing messages
const (
	MsgQualityFailedFmt       = "Failed to set the minimum quality level for %s."
	MsgQualityTooHighFmt      = "Failed to set the minimum quality level for %s above 100, it was set to 100."
	MsgDenominationFailedFmt  = "Failed to set %s for %s."
	MsgNegativePriceFmt       = "Failed to set a negative price for %s."
	MsgNotOwnerFmt            = "You don't own %s."
	MsgNoPriceListFmt         = "%s has no price list. Dismiss the buyer and hire a new one."
	MsgPriceListFull          = "The price list is full."
	MsgPageNotAdded           = "The price list could not be extended."
	MsgEmptyPriceList         = "The price list is empty. Use the add button to tell the buyer what to purchase."
	MsgItemAddedFmt           = "Added %s to the price list."
	MsgAddCancelled           = "Nothing was added to the price list."
	MsgSortedFmt              = "Sorted %d entries."
	MsgExamineFmt             = "%s is here buying items on behalf of %s."
	MsgPriceListTitleFmt      = "Price list for %s"
	MsgChooseItemTitleFmt     = "Add an item for %s to buy"
	MsgUnknownTemplateFmt     = "unknown item #%d"
	MsgInvalidTemplate        = "Choose an item to add."
	MsgInvalidMaterial        = "Choose a valid material."
	MsgPersistenceFailed      = "The price list could not be saved. Please try again."
	MsgBuyerNameRequired      = "A buyer needs a name."
	MsgBelowMinimumFmt        = "%s only buys %s in lots of %d or more."
	MsgInsufficientFundsFmt   = "%s cannot afford that."
	MsgNoMatchFmt             = "%s is not buying that."
	MsgCoinsMustBePositive    = "You need to give at least one coin."
	MsgQuantityMustBePositive = "Quantity must be positive."
	MsgQuantityTooLargeFmt    = "Quantity must be at most %d."
)

// MaxTradeQuantity caps the size of one quoted or purchased lot.
const MaxTradeQuantity = 1_000_000

// Placeholders
const (
	UnknownWeight = "?"
)

// Control labels
const (
	LabelSort     = "Sort"
	LabelNew      = "Add item"
	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelRemove   = "Remove"
)

// Log messages
const (
	LogMsgRenderCalled       = "Render called"
	LogMsgApplyCalled        = "Apply called"
	LogMsgTemplateLookupFail = "Template lookup failed, using placeholder"
	LogMsgFieldRejected      = "Price list field rejected"
	LogMsgPriceListPersisted = "Price list persisted"
	LogMsgPersistFailed      = "Failed to persist price list"
	LogMsgItemAdded          = "Price list entry added"
	LogMsgBuyerCreated       = "Buyer created"
	LogMsgBuyerDismissed     = "Buyer dismissed"
	LogMsgCoinsGiven         = "Coins given to buyer"
	LogMsgPurchaseCompleted  = "Purchase completed"
	LogMsgCompensationFailed = "Failed to remove buyer after price list creation failed"
	LogMsgNotOwner           = "Performer does not own buyer"
)
