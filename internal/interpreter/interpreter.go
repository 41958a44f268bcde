// Package interpreter turns a free-text utterance into a structured
// transaction draft using rule-based matching: a currency-marked amount
// token, direction keyword cues and two-pass category resolution. Behavior
// depends on rule order, not on a grammar; the rules below are deliberate.
package interpreter

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Draft is the structured output of a successfully interpreted utterance.
// It is not yet committed to state.
type Draft struct {
	Type        models.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
}

// FallbackCategory is used when neither the registry nor the synonym table
// resolves a category.
const FallbackCategory = "Other"

var (
	// A currency marker (₹, rs., rupees) before or after a number with
	// optional thousands separators and at most two decimals. The amount
	// is the only mandatory piece of an utterance.
	amountPattern = regexp.MustCompile(`(?i)(?:₹|rs\.?|rupees?)\s*(\d+(?:,\d{3})*(?:\.\d{2})?)|(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:₹|rs\.?|rupees?)`)

	incomeCues  = regexp.MustCompile(`(?i)\b(?:received?|earned?|income|salary|got|paid to me)\b`)
	expenseCues = regexp.MustCompile(`(?i)\b(?:spent|spend|expense|buy|bought|paid for|purchase|cost)\b`)
)

// Interpreter resolves utterances against a synonym table. The zero value is
// not usable; construct with New or NewWithSynonyms.
type Interpreter struct {
	synonyms []Synonym
}

// New returns an Interpreter with the built-in synonym table.
func New() *Interpreter {
	return &Interpreter{synonyms: DefaultSynonyms()}
}

// NewWithSynonyms returns an Interpreter using the given table. Order
// matters: the first matching entry wins.
func NewWithSynonyms(synonyms []Synonym) *Interpreter {
	return &Interpreter{synonyms: synonyms}
}

// Interpret extracts a transaction draft from the utterance. The second
// return value is false when no currency-marked amount is present; every
// other imperfection degrades to a default instead of failing.
func (in *Interpreter) Interpret(utterance string, registry models.CategoryRegistry) (Draft, bool) {
	lower := strings.ToLower(utterance)

	amount, ok := extractAmount(lower)
	if !ok {
		log.WithField("utterance", utterance).Debug("No amount token found in utterance")
		return Draft{}, false
	}

	txType := classifyDirection(lower)
	category := in.resolveCategory(lower, txType, registry)

	log.WithFields(logrus.Fields{
		"type":     txType,
		"amount":   amount.String(),
		"category": category,
	}).Debug("Utterance interpreted")

	return Draft{
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(utterance),
	}, true
}

func extractAmount(lower string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(lower)
	if m == nil {
		return decimal.Zero, false
	}
	token := m[1]
	if token == "" {
		token = m[2]
	}
	amount, err := currencyutils.ParseAmount(token)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// classifyDirection defaults to expense: it is the more common utterance and
// the safer one, since it never over-credits the user. Income wins only when
// income cues match and expense cues do not; contradictory utterances stay
// expense.
func classifyDirection(lower string) models.TransactionType {
	if incomeCues.MatchString(lower) && !expenseCues.MatchString(lower) {
		return models.TypeIncome
	}
	return models.TypeExpense
}

// resolveCategory runs the two passes: a verbatim case-insensitive scan of
// the direction-appropriate registry in registry order, then the synonym
// table. A synonym is adopted only when its canonical category actually
// exists in that registry.
func (in *Interpreter) resolveCategory(lower string, txType models.TransactionType, registry models.CategoryRegistry) string {
	for _, name := range registry.ListFor(txType) {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}

	for _, syn := range in.synonyms {
		if !strings.Contains(lower, syn.Term) {
			continue
		}
		if registry.Contains(txType, syn.Category) {
			return syn.Category
		}
	}

	return FallbackCategory
}
