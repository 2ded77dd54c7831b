package assistant

import (
	"regexp"
	"strings"

	"brewvoice/models"
)

// Phrase sets checked against the whole transcript, in priority order.
var (
	greetingPhrases = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

	finalizePhrases = []string{
		"finalize", "final", "enough", "that's all",
		"finish the order", "confirm the order", "wrap it up", "that's it",
	}

	cancelPhrases = []string{
		"cancel the order", "cancel order", "remove all items",
		"clear the order", "discard the order",
	}
)

var removeRe = regexp.MustCompile(`remove\s*(\d+|one|two|three|four|five|six|seven|eight|nine|ten)?\s*(.*)`)

// Parser turns a recognized transcript into a structured intent. It is a
// pure function of its input: no side effects, no state beyond the fixed
// catalog it was built with.
type Parser struct {
	catalog *models.Catalog
	matcher *catalogMatcher
	rules   []func(string) (models.Intent, bool)
}

func NewParser(catalog *models.Catalog) *Parser {
	p := &Parser{
		catalog: catalog,
		matcher: newCatalogMatcher(catalog.Names()),
	}
	// First match wins; order is the precedence contract.
	p.rules = []func(string) (models.Intent, bool){
		p.matchGreeting,
		p.matchFinalize,
		p.matchCancel,
		p.matchRemoval,
		p.matchOrderLines,
	}
	return p
}

// Parse resolves a transcript to exactly one intent.
func (p *Parser) Parse(transcript string) models.Intent {
	t := normalizeTranscript(transcript)
	for _, rule := range p.rules {
		if intent, ok := rule(t); ok {
			return intent
		}
	}
	return models.Intent{Kind: models.IntentUnrecognized}
}

func containsAny(t string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}

// Greetings win over everything, including embedded item names.
func (p *Parser) matchGreeting(t string) (models.Intent, bool) {
	if containsAny(t, greetingPhrases) {
		return models.Intent{Kind: models.IntentGreet}, true
	}
	return models.Intent{}, false
}

func (p *Parser) matchFinalize(t string) (models.Intent, bool) {
	if containsAny(t, finalizePhrases) {
		return models.Intent{Kind: models.IntentFinalize}, true
	}
	return models.Intent{}, false
}

func (p *Parser) matchCancel(t string) (models.Intent, bool) {
	if containsAny(t, cancelPhrases) {
		return models.Intent{Kind: models.IntentCancelOrder}, true
	}
	return models.Intent{}, false
}

// matchRemoval handles "remove <qty?> <item text>". A missing quantity
// defaults to one; missing item text prompts the user instead of guessing.
func (p *Parser) matchRemoval(t string) (models.Intent, bool) {
	if !strings.Contains(t, "remove") {
		return models.Intent{}, false
	}
	m := removeRe.FindStringSubmatch(t)
	if m == nil || strings.TrimSpace(m[2]) == "" {
		return models.Intent{
			Kind:    models.IntentUnrecognized,
			Message: "Please specify the item and quantity to remove.",
		}, true
	}
	qty := 1
	if m[1] != "" {
		qty = normalizeQuantity(m[1])
	}
	return models.Intent{
		Kind:   models.IntentRemoveItem,
		Remove: &models.OrderEntry{ItemName: strings.TrimSpace(m[2]), Quantity: qty},
	}, true
}

// matchOrderLines scans for catalog items with optional leading
// quantities. Zero matches falls through to an unrecognized reply.
func (p *Parser) matchOrderLines(t string) (models.Intent, bool) {
	matches := p.matcher.scan(t)
	if len(matches) == 0 {
		return models.Intent{
			Kind:    models.IntentUnrecognized,
			Message: "Oops, it's not available.",
		}, true
	}
	entries := make([]models.OrderEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, models.OrderEntry{ItemName: m.name, Quantity: m.quantity})
	}
	return models.Intent{Kind: models.IntentAddItems, Entries: entries}, true
}
