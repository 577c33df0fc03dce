package dto

// RegisterCustomerRequest datos capturados en el registro. Las reglas de cada tag
// se registran en el validador del caso de uso.
type RegisterCustomerRequest struct {
	Name       string `validate:"fullname"`
	BirthDate  string `validate:"birthdate"`   // dd/mm/aaaa
	NationalID string `validate:"cpf"`         // con o sin puntuación
	Address    string `validate:"fulladdress"` // logradouro, nro - bairro - cidade/UF
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID         string
	Name       string
	BirthDate  string // dd/mm/aaaa
	NationalID string // 11 dígitos
	Address    string
	Accounts   []int
}
