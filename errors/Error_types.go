package errors

type ERR int32

const (
	ERR_UNKNOWN ERR = iota
	ERR_INVALID_ARGUMENT
	ERR_PROCESSING
	ERR_CONFIGURATION
	ERR_SERVICE_ERROR
	ERR_KEY_DERIVATION
	ERR_INVALID_KEY
	ERR_ADDRESS_CONSTRUCTION
	ERR_CHAIN_DATA
	ERR_AMOUNT_OVERFLOW
	ERR_COUNT_OVERFLOW
)

var errName = map[ERR]string{
	ERR_UNKNOWN:              "ERR_UNKNOWN",
	ERR_INVALID_ARGUMENT:     "ERR_INVALID_ARGUMENT",
	ERR_PROCESSING:           "ERR_PROCESSING",
	ERR_CONFIGURATION:        "ERR_CONFIGURATION",
	ERR_SERVICE_ERROR:        "ERR_SERVICE_ERROR",
	ERR_KEY_DERIVATION:       "ERR_KEY_DERIVATION",
	ERR_INVALID_KEY:          "ERR_INVALID_KEY",
	ERR_ADDRESS_CONSTRUCTION: "ERR_ADDRESS_CONSTRUCTION",
	ERR_CHAIN_DATA:           "ERR_CHAIN_DATA",
	ERR_AMOUNT_OVERFLOW:      "ERR_AMOUNT_OVERFLOW",
	ERR_COUNT_OVERFLOW:       "ERR_COUNT_OVERFLOW",
}

func (e ERR) String() string {
	if name, ok := errName[e]; ok {
		return name
	}

	return "ERR_UNKNOWN"
}

var (
	ErrUnknown             = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument     = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrProcessing          = New(ERR_PROCESSING, "error processing")
	ErrConfiguration       = New(ERR_CONFIGURATION, "configuration error")
	ErrServiceError        = New(ERR_SERVICE_ERROR, "service error")
	ErrKeyDerivation       = New(ERR_KEY_DERIVATION, "key derivation failed")
	ErrInvalidKey          = New(ERR_INVALID_KEY, "invalid public key")
	ErrAddressConstruction = New(ERR_ADDRESS_CONSTRUCTION, "address construction failed")
	ErrChainData           = New(ERR_CHAIN_DATA, "chain data unavailable")
	ErrAmountOverflow      = New(ERR_AMOUNT_OVERFLOW, "amount overflow")
	ErrCountOverflow       = New(ERR_COUNT_OVERFLOW, "count overflow")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewServiceError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_ERROR, message, params...)
}
func NewKeyDerivationError(message string, params ...interface{}) error {
	return New(ERR_KEY_DERIVATION, message, params...)
}
func NewInvalidKeyError(message string, params ...interface{}) error {
	return New(ERR_INVALID_KEY, message, params...)
}
func NewAddressConstructionError(message string, params ...interface{}) error {
	return New(ERR_ADDRESS_CONSTRUCTION, message, params...)
}
func NewChainDataError(message string, params ...interface{}) error {
	return New(ERR_CHAIN_DATA, message, params...)
}
func NewAmountOverflowError(message string, params ...interface{}) error {
	return New(ERR_AMOUNT_OVERFLOW, message, params...)
}
func NewCountOverflowError(message string, params ...interface{}) error {
	return New(ERR_COUNT_OVERFLOW, message, params...)
}
