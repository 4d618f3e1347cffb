package airdrop

const (
	contractStateKey     = "contractstate"
	tokenAddressKey      = "tokenaddress"
	totalClaimedKey      = "totalclaimed"
	beneficiaryKeyPrefix = "beneficiary_"

	hexAddressRegex      = `^[0-9a-fA-F]{40}$`
	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`
	zeroTokenAddress     = "0x0000000000000000000000000000000000000000"

	transferFunction = "Transfer"
)

// Event names emitted through ctx.SetEvent.
const (
	ContractInitializedKey     = "ContractInitialized"
	BeneficiaryRegisteredKey   = "BeneficiaryRegistered"
	BeneficiariesRegisteredKey = "BeneficiariesRegistered"
	BeneficiaryAmendedKey      = "BeneficiaryAmended"
	FundedKey                  = "Funded"
	OpenedKey                  = "Opened"
	PauseSetKey                = "PauseSet"
	TokenAddressSetKey         = "TokenAddressSet"
	ClaimedKey                 = "Claimed"
)
