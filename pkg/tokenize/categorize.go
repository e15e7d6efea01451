package tokenize

import "strings"

// Template categories.
const (
	CategoryWelcome       = "Welcome"
	CategoryNewsletter    = "Newsletter"
	CategoryPromo         = "Promo"
	CategoryTransactional = "Transactional"
	CategoryEcommerce     = "Ecommerce"
)

var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategoryWelcome, []string{"welcome", "onboard", "getting started", "join", "signup", "sign up"}},
	{CategoryNewsletter, []string{"newsletter", "digest", "weekly", "monthly", "roundup", "stories", "article"}},
	{CategoryPromo, []string{"sale", "discount", "off", "promo", "deal", "offer", "launch", "announce", "new arrival"}},
	{CategoryTransactional, []string{"receipt", "invoice", "confirm", "order", "ship", "track", "password", "reset", "verify", "notification"}},
	{CategoryEcommerce, []string{"cart", "abandon", "product", "shop", "buy", "purchase", "review", "recommend"}},
}

// Categorize tags a template by keywords found in its markup or file
// name. A template matching nothing is a newsletter.
func Categorize(html, filename string) []string {
	body := strings.ToLower(html)
	name := strings.ToLower(filename)

	var categories []string
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(body, kw) || strings.Contains(name, kw) {
				categories = append(categories, rule.category)
				break
			}
		}
	}
	if len(categories) == 0 {
		return []string{CategoryNewsletter}
	}
	return categories
}
