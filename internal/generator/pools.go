package generator

import "fmt"

// Fixed catalogs every generation routine draws from. The enumerations and
// weights define the dataset's distributions and are part of its contract.

var categories = []string{
	"Electronics", "Clothing", "Home & Garden",
	"Sports", "Books", "Toys", "Beauty", "Food",
}

var brands = map[string][]string{
	"Electronics":   {"Samsung", "Sony", "Apple", "Philips"},
	"Clothing":      {"Nike", "Adidas", "H&M", "Louis Vuitton"},
	"Home & Garden": {"Ikea", "Bosch", "HomeEase", "GardenPro"},
	"Sports":        {"Nike", "Adidas", "Decathlon", "Under Armour"},
	"Books":         {"Gallimard", "Penguin", "Hachette", "BookWorld"},
	"Toys":          {"Lego", "Playmobil", "Mattel", "ToyBox"},
	"Beauty":        {"L'Oréal", "Sephora", "Yves Rocher", "BeautyPlus"},
	"Food":          {"Nestlé", "Danone", "Carrefour", "Foodies"},
}

var pages = []string{
	"/", "/products", "/cart", "/checkout", "/account", "/orders", "/returns",
	"/search", "/category/electronics", "/category/clothing",
	"/category/home", "/category/sports", "/category/books", "/category/toys",
	"/category/beauty", "/category/food", "/offers", "/faq", "/about", "/contact",
}

var (
	actions       = []string{"view", "click", "add_to_cart", "remove_from_cart", "search"}
	actionWeights = []int{50, 30, 15, 3, 2}

	devices       = []string{"Desktop", "Mobile", "Tablet"}
	deviceWeights = []int{40, 50, 10}

	paymentMethods = []string{"credit_card", "paypal", "debit_card", "gift_card"}

	statuses      = []string{"completed", "pending", "cancelled", "refunded"}
	statusWeights = []int{85, 8, 5, 2}

	basketSizes   = []int{1, 2, 3, 4, 5}
	basketWeights = []int{50, 25, 15, 7, 3}

	quantities      = []int{1, 2, 3}
	quantityWeights = []int{70, 20, 10}
)

// Pools holds the identifier lists shared by the generators.
type Pools struct {
	Users    []string
	Products []string
}

// NewPools builds the 0-padded user and product identifier sequences.
func NewPools(numUsers, numProducts int) *Pools {
	users := make([]string, 0, max(numUsers, 0))
	for i := 0; i < numUsers; i++ {
		users = append(users, fmt.Sprintf("user_%06d", i))
	}

	products := make([]string, 0, max(numProducts, 0))
	for i := 0; i < numProducts; i++ {
		products = append(products, fmt.Sprintf("product_%04d", i))
	}

	return &Pools{Users: users, Products: products}
}
