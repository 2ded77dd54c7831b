package assistant

import "fmt"

// Fixed reply strings. The assistant always answers with one of these;
// there is no generated text anywhere.
const (
	greetingReply      = "Hello! Order something you like."
	emptyOrderReply    = "Please order something!"
	orderPlacedReply   = "Your order has been placed successfully!"
	orderFailedReply   = "Sorry, there was an issue with your order."
	orderClearedReply  = "All items have been removed from your order."
	cancelFailedReply  = "An error occurred while canceling the order. Please try again."
	missingSessionMsg  = "A session is required to cancel the order."
	finalizeBusyReply  = "Hold on, your order is already being placed."
	repeatFallbackMsg  = "Sorry, can you repeat that?"
	onTheWayReply      = "Your orders are on the way..."
)

// additionalPrompts is the pool one "anything else?" reply is drawn from
// after items are added. Selection is presentation only.
var additionalPrompts = []string{
	"Anything else?",
	"Anything more you'd like?",
	"Can I get you anything else?",
	"Shall I add something else to your order?",
	"Would you like something more with that?",
}

// plural appends an "s" for quantities above one.
func plural(qty int) string {
	if qty > 1 {
		return "s"
	}
	return ""
}

func addedReply(qty int, item string) string {
	return fmt.Sprintf("%d %s%s added to your order.", qty, item, plural(qty))
}

func removedReply(qty int, item string) string {
	return fmt.Sprintf("%d %s%s removed from your order.", qty, item, plural(qty))
}

func onlyHaveReply(held int, item string) string {
	return fmt.Sprintf("You only have %d %s%s in your order.", held, item, plural(held))
}

func noneFoundReply(item string) string {
	return fmt.Sprintf("No %ss found in your order.", item)
}

func notAvailableReply(item string) string {
	return fmt.Sprintf("Sorry, %s is not available.", item)
}
