package prompts

const classifySpec = `Respond with ONLY the category name (booking, tracking, customer, documents, or management). No explanation needed.`

const bookingSpec = `Respond in JSON format:
{
  "origin": "origin location",
  "destination": "destination location",
  "cargoType": "type of cargo",
  "weight": "weight with unit or null",
  "dimensions": "dimensions or null",
  "quantity": number or null
}`

const trackingSpec = `Respond with ONLY the tracking number, nothing else.`

const customerSpec = `Respond in JSON format:
{
  "replyText": "your drafted reply here",
  "tone": "professional|friendly|apologetic",
  "suggestedActions": ["action 1", "action 2"]
}`

const documentsSpec = `Respond in JSON format:
{
  "documentType": "SI or BL",
  "documentNumber": "document number",
  "isValid": true or false,
  "completeness": true or false,
  "accuracy": true or false,
  "issues": ["issue 1", "issue 2"] or []
}`

const managementSpec = `Respond in JSON format:
{
  "severity": "low|medium|high|critical",
  "title": "brief issue title",
  "description": "detailed description",
  "recommendedActions": ["action 1", "action 2"],
  "escalate": true or false
}`

// specs define the reply format each stage's parser depends on, so they
// cannot be overridden.
var specs = map[Stage]string{
	StageClassify:   classifySpec,
	StageBooking:    bookingSpec,
	StageTracking:   trackingSpec,
	StageCustomer:   customerSpec,
	StageDocuments:  documentsSpec,
	StageManagement: managementSpec,
}

// Spec returns the response format for stage.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
