// Package model defines the domain types shared across the application.
package model

// CategoryType indicates whether a category collects income or expense
// transactions.
type CategoryType string

const (
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
)

// Category is a named bucket transactions are classified under. Icon,
// IconFamily and Color are presentation hints carried opaquely by the core.
// The JSON field names are the persisted interchange format and must not
// change.
type Category struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          CategoryType `json:"type"`
	Icon          string       `json:"icon"`
	IconFamily    string       `json:"iconFamily"`
	Color         string       `json:"color"`
	Subcategories []string     `json:"subcategories"`
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	out.Subcategories = append([]string(nil), c.Subcategories...)
	return out
}

// DefaultAccounts are the suggested account names offered when recording a
// transaction. An account is a free string; these are suggestions only.
var DefaultAccounts = []string{"Cash", "Bank", "Credit Card", "Savings"}

// defaultCategories is the seed set written on first run: seven expense and
// three income categories. Ids, names, colors and icons match previously
// persisted data and must stay stable.
var defaultCategories = []Category{
	{
		ID:            "food",
		Name:          "Food",
		Type:          CategoryTypeExpense,
		Icon:          "restaurant",
		IconFamily:    "MaterialIcons",
		Color:         "#FF6B6B",
		Subcategories: []string{"Groceries", "Dining Out", "Coffee", "Delivery", "Snacks"},
	},
	{
		ID:            "transport",
		Name:          "Transport",
		Type:          CategoryTypeExpense,
		Icon:          "directions-car",
		IconFamily:    "MaterialIcons",
		Color:         "#4ECDC4",
		Subcategories: []string{"Gas", "Public Transit", "Uber/Lyft", "Parking", "Maintenance"},
	},
	{
		ID:            "shopping",
		Name:          "Shopping",
		Type:          CategoryTypeExpense,
		Icon:          "shopping-bag",
		IconFamily:    "Feather",
		Color:         "#A78BFA",
		Subcategories: []string{"Clothing", "Electronics", "Home", "Gifts", "Other"},
	},
	{
		ID:            "entertainment",
		Name:          "Entertainment",
		Type:          CategoryTypeExpense,
		Icon:          "movie",
		IconFamily:    "MaterialIcons",
		Color:         "#F59E0B",
		Subcategories: []string{"Movies", "Games", "Concerts", "Sports", "Streaming"},
	},
	{
		ID:            "health",
		Name:          "Health",
		Type:          CategoryTypeExpense,
		Icon:          "heart",
		IconFamily:    "Ionicons",
		Color:         "#EC4899",
		Subcategories: []string{"Doctor", "Pharmacy", "Gym", "Insurance", "Wellness"},
	},
	{
		ID:            "bills",
		Name:          "Bills",
		Type:          CategoryTypeExpense,
		Icon:          "receipt",
		IconFamily:    "MaterialIcons",
		Color:         "#06B6D4",
		Subcategories: []string{"Rent", "Utilities", "Internet", "Phone", "Subscriptions"},
	},
	{
		ID:            "education",
		Name:          "Education",
		Type:          CategoryTypeExpense,
		Icon:          "school",
		IconFamily:    "MaterialIcons",
		Color:         "#8B5CF6",
		Subcategories: []string{"Tuition", "Books", "Courses", "Supplies", "Tutoring"},
	},
	{
		ID:            "salary",
		Name:          "Salary",
		Type:          CategoryTypeIncome,
		Icon:          "account-balance-wallet",
		IconFamily:    "MaterialIcons",
		Color:         "#34C759",
		Subcategories: []string{"Monthly", "Bonus", "Commission", "Overtime"},
	},
	{
		ID:            "freelance",
		Name:          "Freelance",
		Type:          CategoryTypeIncome,
		Icon:          "laptop",
		IconFamily:    "MaterialIcons",
		Color:         "#10B981",
		Subcategories: []string{"Project", "Consulting", "Contract", "Side Gig"},
	},
	{
		ID:            "investment",
		Name:          "Investment",
		Type:          CategoryTypeIncome,
		Icon:          "trending-up",
		IconFamily:    "Feather",
		Color:         "#0EA5E9",
		Subcategories: []string{"Stocks", "Dividends", "Crypto", "Interest", "Rental"},
	},
}

// DefaultCategories returns a fresh copy of the seed category set. Callers
// may mutate the result freely.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	for i, c := range defaultCategories {
		out[i] = c.Clone()
	}
	return out
}
