package mdpicks_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdpicks"
)

// Example converts a post with one listed product.
func Example() {
	conv, err := mdpicks.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdpicks.Input{
		Markdown: `---
products:
  - title: Cozy Rain Jacket
    rating: 4.55
    review_count: 12418
---
### Cozy Rain Jacket

Warm and dry.
`,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range result.Picks {
		fmt.Println(p.Title)
		fmt.Println(p.RatingText)
		fmt.Println(p.Label, p.Href)
	}
	// Output:
	// Cozy Rain Jacket
	// ★★★★☆ 4.6 (12,418 reviews)
	// Search on Amazon → https://www.amazon.co.uk/s?k=Cozy%20Rain%20Jacket
}

// Example_fragment renders body HTML only, for embedding in a site template.
func Example_fragment() {
	conv, err := mdpicks.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdpicks.Input{
		Markdown: "### Puddle Boots\n",
		Metadata: map[string]any{"items": []any{map[string]any{"title": "Puddle Boots"}}},
		Fragment: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(result.HTML))
	// Output:
	// <h3 id="puddle-boots">Puddle Boots</h3>
	// <div class="pick-rating pick-rating--pending">Rating pending</div>
	// <div class="pick">
	//   <div class="pick-row">
	//     <div class="pick-tile" aria-hidden="true">PB</div>
	//     <div class="pick-body">
	// <div class="pick-cta-row">
	//         <a class="pick-cta" href="https://www.amazon.co.uk/s?k=Puddle%20Boots" rel="sponsored nofollow noopener" target="_blank">Search on Amazon →</a>
	//       </div>
	//     </div>
	//   </div>
	// </div>
}
