package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Rule violations. The texts are shown to the end user as-is.
var (
	ErrNameRequired     = errors.New("O nome é obrigatório")
	ErrEmailRequired    = errors.New("O email é obrigatório")
	ErrInvalidEmail     = errors.New("Email inválido")
	ErrPasswordRequired = errors.New("A senha é obrigatória")
	ErrPasswordLength   = errors.New("A senha deve ter entre 4 e 20 caracteres")

	ErrAccountNameRequired   = errors.New("O nome da conta é obrigatório")
	ErrAccountNumberRequired = errors.New("O número da conta é obrigatório")
	ErrAccountNumberLength   = errors.New("O número da conta deve ter entre 5 e 20 caracteres")
	ErrAgencyRequired        = errors.New("O número da agência é obrigatório")
	ErrAgencyLength          = errors.New("O número da agência deve ter entre 3 e 10 caracteres")

	ErrDescriptionTooLong = errors.New("A descrição deve ter no máximo 255 caracteres")

	ErrBankAccountRequired   = errors.New("A transação deve pertencer a uma conta bancária")
	ErrCategoryRequired      = errors.New("A transação deve pertencer a uma categoria")
	ErrTypeRequired          = errors.New("O tipo é obrigatório")
	ErrInvalidType           = errors.New("O tipo deve ser INCOME ou EXPENSE")
	ErrAmountRequired        = errors.New("O valor é obrigatório")
	ErrAmountNotPositive     = errors.New("O valor deve ser maior que zero")
	ErrTransactionAtRequired = errors.New("A data da transação é obrigatória")

	ErrNoFieldsToUpdate = errors.New("Informe ao menos um campo para atualizar")
)

var rules = []error{
	ErrNameRequired, ErrEmailRequired, ErrInvalidEmail, ErrPasswordRequired, ErrPasswordLength,
	ErrAccountNameRequired, ErrAccountNumberRequired, ErrAccountNumberLength, ErrAgencyRequired, ErrAgencyLength,
	ErrDescriptionTooLong,
	ErrBankAccountRequired, ErrCategoryRequired, ErrTypeRequired, ErrInvalidType,
	ErrAmountRequired, ErrAmountNotPositive, ErrTransactionAtRequired,
	ErrNoFieldsToUpdate,
}

// Reason returns the user-facing text of the rule err violates, if any.
func Reason(err error) (string, bool) {
	for _, rule := range rules {
		if errors.Is(err, rule) {
			return rule.Error(), true
		}
	}
	return "", false
}
