package assistant

import (
	"testing"

	"brewvoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParser() *Parser {
	return NewParser(models.NewCatalog(models.DefaultMenu()))
}

// overlapParser has a catalog where one item name is a substring of
// another, which is the case longest-match exists for.
func overlapParser() *Parser {
	return NewParser(models.NewCatalog([]models.MenuItem{
		{Name: "coffee", Price: 100},
		{Name: "cold coffee", Price: 120},
		{Name: "espresso", Price: 60},
	}))
}

func TestParseGreeting(t *testing.T) {
	p := testParser()

	t.Run("plain greeting", func(t *testing.T) {
		intent := p.Parse("hello")
		assert.Equal(t, models.IntentGreet, intent.Kind)
	})

	t.Run("greeting wins over item names", func(t *testing.T) {
		intent := p.Parse("good morning i want two espresso")
		assert.Equal(t, models.IntentGreet, intent.Kind)
		assert.Empty(t, intent.Entries)
	})
}

func TestParseFinalize(t *testing.T) {
	p := testParser()
	for _, transcript := range []string{
		"finalize",
		"that's all",
		"enough",
		"confirm the order please",
		"wrap it up",
		"that's it",
	} {
		intent := p.Parse(transcript)
		assert.Equal(t, models.IntentFinalize, intent.Kind, "transcript %q", transcript)
	}
}

func TestParseCancel(t *testing.T) {
	p := testParser()
	for _, transcript := range []string{
		"cancel the order",
		"cancel order",
		"remove all items",
		"clear the order",
		"please discard the order",
	} {
		intent := p.Parse(transcript)
		assert.Equal(t, models.IntentCancelOrder, intent.Kind, "transcript %q", transcript)
	}
}

func TestParseRemoval(t *testing.T) {
	p := testParser()

	t.Run("with number word", func(t *testing.T) {
		intent := p.Parse("remove two cappuccino")
		require.Equal(t, models.IntentRemoveItem, intent.Kind)
		require.NotNil(t, intent.Remove)
		assert.Equal(t, "cappuccino", intent.Remove.ItemName)
		assert.Equal(t, 2, intent.Remove.Quantity)
	})

	t.Run("with digits", func(t *testing.T) {
		intent := p.Parse("remove 3 sandwich")
		require.Equal(t, models.IntentRemoveItem, intent.Kind)
		assert.Equal(t, "sandwich", intent.Remove.ItemName)
		assert.Equal(t, 3, intent.Remove.Quantity)
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		intent := p.Parse("remove cappuccino")
		require.Equal(t, models.IntentRemoveItem, intent.Kind)
		assert.Equal(t, 1, intent.Remove.Quantity)
	})

	t.Run("missing item prompts", func(t *testing.T) {
		intent := p.Parse("remove")
		assert.Equal(t, models.IntentUnrecognized, intent.Kind)
		assert.Equal(t, "Please specify the item and quantity to remove.", intent.Message)
	})
}

func TestParseOrderLines(t *testing.T) {
	p := testParser()

	t.Run("single item without quantity defaults to one", func(t *testing.T) {
		intent := p.Parse("cappuccino")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		require.Len(t, intent.Entries, 1)
		assert.Equal(t, models.OrderEntry{ItemName: "cappuccino", Quantity: 1}, intent.Entries[0])
	})

	t.Run("multiple items preserve transcript order", func(t *testing.T) {
		intent := p.Parse("one espresso and two cold coffee")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		require.Len(t, intent.Entries, 2)
		assert.Equal(t, models.OrderEntry{ItemName: "espresso", Quantity: 1}, intent.Entries[0])
		assert.Equal(t, models.OrderEntry{ItemName: "cold coffee", Quantity: 2}, intent.Entries[1])
	})

	t.Run("digit quantity", func(t *testing.T) {
		intent := p.Parse("4 veg pizza")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		require.Len(t, intent.Entries, 1)
		assert.Equal(t, 4, intent.Entries[0].Quantity)
	})

	t.Run("digit zero degrades to one", func(t *testing.T) {
		intent := p.Parse("0 cappuccino")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		require.Len(t, intent.Entries, 1)
		assert.Equal(t, models.OrderEntry{ItemName: "cappuccino", Quantity: 1}, intent.Entries[0])
	})

	t.Run("zero matches is unrecognized", func(t *testing.T) {
		intent := p.Parse("rocket fuel please")
		assert.Equal(t, models.IntentUnrecognized, intent.Kind)
		assert.Equal(t, "Oops, it's not available.", intent.Message)
	})
}

func TestParseLongestMatch(t *testing.T) {
	p := overlapParser()

	t.Run("longer phrase wins, no spurious shorter match", func(t *testing.T) {
		intent := p.Parse("two cold coffee")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		require.Len(t, intent.Entries, 1)
		assert.Equal(t, models.OrderEntry{ItemName: "cold coffee", Quantity: 2}, intent.Entries[0])
	})

	t.Run("matches never overlap but both can appear", func(t *testing.T) {
		intent := p.Parse("cold coffee and a coffee")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		require.Len(t, intent.Entries, 2)
		assert.Equal(t, "cold coffee", intent.Entries[0].ItemName)
		assert.Equal(t, "coffee", intent.Entries[1].ItemName)
	})

	t.Run("shorter phrase still matches alone", func(t *testing.T) {
		intent := p.Parse("one coffee")
		require.Len(t, intent.Entries, 1)
		assert.Equal(t, "coffee", intent.Entries[0].ItemName)
	})
}

func TestParseHomophones(t *testing.T) {
	p := testParser()

	t.Run("to becomes two", func(t *testing.T) {
		intent := p.Parse("to espresso")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		assert.Equal(t, 2, intent.Entries[0].Quantity)
	})

	t.Run("for becomes four", func(t *testing.T) {
		intent := p.Parse("for espresso")
		require.Equal(t, models.IntentAddItems, intent.Kind)
		assert.Equal(t, 4, intent.Entries[0].Quantity)
	})

	t.Run("whole words only, item names stay intact", func(t *testing.T) {
		// "for" inside another word must not be rewritten.
		assert.Equal(t, "fortune two espresso", normalizeTranscript("fortune to espresso"))
	})
}

func TestNormalizeQuantity(t *testing.T) {
	assert.Equal(t, 3, normalizeQuantity("three"))
	assert.Equal(t, 7, normalizeQuantity("7"))
	assert.Equal(t, 4, normalizeQuantity("for"))
	assert.Equal(t, 2, normalizeQuantity("to"))
	assert.Equal(t, 1, normalizeQuantity("on"))
	// Garbled tokens and zero degrade to one, never fail.
	assert.Equal(t, 1, normalizeQuantity("banana"))
	assert.Equal(t, 1, normalizeQuantity(""))
	assert.Equal(t, 1, normalizeQuantity("0"))
}
