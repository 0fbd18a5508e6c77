package prompts

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/freightdesk/internal/category"
)

const bookingInstructions = `You are a logistics booking agent. Extract shipment booking details from this email and create a structured booking.

Extract the following information:
1. Origin location
2. Destination location
3. Cargo type
4. Cargo weight (if mentioned)
5. Cargo dimensions (if mentioned)
6. Quantity (if mentioned)`

const trackingInstructions = `You are a logistics tracking agent. Extract the tracking number from this email.

Find the tracking number. It usually starts with "TRK" or is a series of numbers/letters.`

const customerInstructions = `You are a professional customer service agent for a logistics company. Draft a helpful, professional reply to this customer email.

Guidelines:
- Be professional and courteous
- Address the customer's concerns directly
- Provide helpful information
- Suggest next steps if applicable
- Keep the tone friendly but professional`

const documentsInstructions = `You are a document validation expert for logistics. Analyze this email about Shipping Instructions (SI) or Bill of Lading (BL) documents.

Extract and validate:
1. Document type (SI or BL)
2. Document number
3. Check for completeness (are all required fields mentioned?)
4. Check for accuracy (any obvious errors or inconsistencies?)
5. List any issues found`

const managementInstructions = `You are a management escalation agent for a logistics company. Analyze this email for critical issues that need management attention.

Assess:
1. Severity level (low, medium, high, critical)
2. Issue title (brief summary)
3. Detailed description
4. Recommended actions
5. Whether this needs immediate escalation`

var instructions = map[Stage]string{
	StageClassify:   classifyInstructions(),
	StageBooking:    bookingInstructions,
	StageTracking:   trackingInstructions,
	StageCustomer:   customerInstructions,
	StageDocuments:  documentsInstructions,
	StageManagement: managementInstructions,
}

func classifyInstructions() string {
	var b strings.Builder
	b.WriteString("You are an email classification expert for a logistics company. ")
	b.WriteString("Analyze the following email and classify it into ONE of these categories:\n\nCategories:\n")
	for _, c := range category.All() {
		fmt.Fprintf(&b, "- %s: %s\n", c, c.Description())
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Instructions returns the built-in instructions for stage.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
