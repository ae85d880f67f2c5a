// Package responder maps visitor messages to canned chatbot replies.
//
// Matching is rule-based: the lower-cased message is tested against an
// ordered list of keyword categories using substring containment, and the
// reply of the first matching category wins. Category keyword sets overlap,
// so the declared order is part of the contract. There is no conversation
// history, no randomness, and no external model: identical input always
// yields identical output.
package responder

import "strings"

// Company contact details, shared by the contact-category reply and the
// quote follow-up flow on the website.
const (
	CompanyPhone = "+1 (555) 028-4550"
	CompanyEmail = "info@meridianengineering.com"
)

type category struct {
	name     string
	keywords []string
	reply    string
}

// categories are tested in declared order; first match wins.
var categories = []category{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "greetings"},
		reply: "Hello! Welcome to Meridian Engineering. How can I help you today? " +
			"You can ask me about our services, request a quote, or get our contact details.",
	},
	{
		name:     "services",
		keywords: []string{"service", "offer", "what do you do", "capabilit"},
		reply: "We provide industrial automation, electrical installations, solar energy systems, " +
			"maintenance contracts, and industrial planning. Which area are you interested in?",
	},
	{
		name:     "quote",
		keywords: []string{"quote", "price", "pricing", "cost", "estimate", "budget", "how much"},
		reply: "Happy to help with a quote! Fill in the quote form on our website or tell me a bit " +
			"about your project, and our engineers will prepare an estimate within two business days.",
	},
	{
		name:     "contact",
		keywords: []string{"contact", "phone", "email", "reach", "address", "call", "speak"},
		reply: "You can reach our team at " + CompanyPhone + " or " + CompanyEmail + ". " +
			"Our office hours are Monday to Friday, 8:00–17:00.",
	},
	{
		name:     "automation",
		keywords: []string{"automation", "automate", "plc", "scada", "robot"},
		reply: "Our automation team designs and commissions PLC and SCADA systems, robotic cells, " +
			"and complete production-line controls. Tell us about your plant and we will take it from there.",
	},
	{
		name:     "maintenance",
		keywords: []string{"maintenance", "repair", "breakdown", "inspection"},
		reply: "We offer preventive maintenance contracts, 24/7 emergency repairs, and periodic " +
			"inspections for industrial installations.",
	},
	{
		name:     "solar",
		keywords: []string{"solar", "photovoltaic", "renewable", "energy"},
		reply: "We plan and install commercial solar energy systems, from rooftop photovoltaics " +
			"to full energy-management integration.",
	},
	{
		name:     "thanks",
		keywords: []string{"thank", "thx", "appreciate"},
		reply:    "You're welcome! Is there anything else I can help you with?",
	},
}

// fallbackReply is returned when no category matches, including for empty
// input. It enumerates the supported topics.
const fallbackReply = "I'm not sure I understood that. I can help you with our services, " +
	"quotes and pricing, contact details, automation, maintenance, or solar energy. " +
	"What would you like to know?"

// Reply returns the canned reply for the given visitor message. It is pure
// and total: it never fails for any input string.
func Reply(message string) string {
	lowered := strings.ToLower(message)

	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lowered, kw) {
				return c.reply
			}
		}
	}
	return fallbackReply
}
