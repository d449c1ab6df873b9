// Package catalog holds the built-in purchase trials: the same order
// submitted in different body shapes and with different Authorization
// schemes, so a gateway's accepted format can be found by comparison.
package catalog

// Profile is the customer and order data every built-in body is built from.
type Profile struct {
	Name          string
	Email         string
	CPF           string
	Phone         string
	PaymentMethod string
	Amount        int // minor currency units
	ItemTitle     string
}

// Sample data. ValidCPF passes the CPF check-digit algorithm, SampleCPF does not.
const (
	SampleCPF   = "12345678900"
	ValidCPF    = "11144477735"
	SmallAmount = 1000
)

// DefaultProfile returns the sample order used by the built-in catalogs.
func DefaultProfile() Profile {
	return Profile{
		Name:          "JOÃO DA SILVA SANTOS",
		Email:         "joodasilvasantos@gmail.com",
		CPF:           SampleCPF,
		Phone:         "11999999999",
		PaymentMethod: "PIX",
		Amount:        11868,
		ItemTitle:     "Regularizar Débitos",
	}
}

// Item is one purchased line.
type Item struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
	Tangible  bool   `json:"tangible"`
}

// Customer groups the buyer fields for the nested shape.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
}

// FlatBody carries the customer fields next to the order fields.
// Items is omitted from the JSON when empty, which gives the minimal shape.
type FlatBody struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CPF           string `json:"cpf"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        int    `json:"amount"`
	Items         []Item `json:"items,omitempty"`
}

// NestedBody groups the customer fields under "customer".
type NestedBody struct {
	Customer      Customer `json:"customer"`
	PaymentMethod string   `json:"paymentMethod"`
	Amount        int      `json:"amount"`
	Items         []Item   `json:"items,omitempty"`
}

// Items returns the single intangible line item covering the whole amount.
func (p Profile) Items() []Item {
	return []Item{{
		Title:     p.ItemTitle,
		Quantity:  1,
		UnitPrice: p.Amount,
		Tangible:  false,
	}}
}

// Customer returns the buyer fields of the profile.
func (p Profile) Customer() Customer {
	return Customer{Name: p.Name, Email: p.Email, CPF: p.CPF, Phone: p.Phone}
}

// Flat builds the flat shape with items.
func (p Profile) Flat() FlatBody {
	b := p.Minimal()
	b.Items = p.Items()
	return b
}

// Minimal builds the flat shape without items.
func (p Profile) Minimal() FlatBody {
	return FlatBody{
		Name:          p.Name,
		Email:         p.Email,
		CPF:           p.CPF,
		Phone:         p.Phone,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
	}
}

// Nested builds the customer-object shape with items.
func (p Profile) Nested() NestedBody {
	return NestedBody{
		Customer:      p.Customer(),
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		Items:         p.Items(),
	}
}
