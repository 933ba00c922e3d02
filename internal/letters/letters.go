// Package letters composes the administration's outreach emails for MOA
// renewals. Only the text is produced here; sending stays with the admin's
// own mail client.
package letters

import (
	"fmt"
	"time"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

// Letter is a composed subject/body pair addressed to an HTE contact.
type Letter struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Renewal composes the right outreach letter for the HTE's agreement state:
// an expired notice, a renewal reminder inside the 90-day window, or a
// general partnership note otherwise.
func Renewal(hte domain.HTE, now time.Time) Letter {
	contact := hte.ContactPerson
	if contact == "" {
		contact = "Sir/Madam"
	}

	letter := Letter{To: hte.ContactEmail}

	if hte.Expired(now) {
		letter.Subject = fmt.Sprintf("MOA Renewal Required - %s", hte.Name)
		letter.Body = fmt.Sprintf(
			"Dear %s,\n\nGreetings from Polytechnic University of the Philippines!\n\n"+
				"I am writing to inform you that the Memorandum of Agreement (MOA) between %s and PUP "+
				"for our On-the-Job Training (OJT) program has expired on %s.\n\n"+
				"We value our partnership and would like to continue collaborating with your organization. "+
				"To proceed with accepting new interns, we will need to renew our MOA.\n\n"+
				"Please let us know if you would like to proceed with the renewal process.\n\n"+
				"Best regards,\nPUP OJT Administration\nPolytechnic University of the Philippines",
			contact, hte.Name, formatExpiry(hte))
		return letter
	}

	if days, ok := hte.DaysUntilExpiry(now); ok && days <= 90 {
		letter.Subject = fmt.Sprintf("MOA Renewal Reminder - %s", hte.Name)
		letter.Body = fmt.Sprintf(
			"Dear %s,\n\nGreetings from Polytechnic University of the Philippines!\n\n"+
				"This is a friendly reminder that the Memorandum of Agreement (MOA) between %s and PUP "+
				"for our On-the-Job Training (OJT) program is set to expire on %s "+
				"(approximately %d days from now).\n\n"+
				"To ensure uninterrupted collaboration, we would like to initiate the MOA renewal process. "+
				"Would you be available for a meeting to discuss the renewal terms?\n\n"+
				"Best regards,\nPUP OJT Administration\nPolytechnic University of the Philippines",
			contact, hte.Name, formatExpiry(hte), days)
		return letter
	}

	letter.Subject = fmt.Sprintf("PUP OJT Program Inquiry - %s", hte.Name)
	letter.Body = fmt.Sprintf(
		"Dear %s,\n\nGreetings from Polytechnic University of the Philippines!\n\n"+
			"I am reaching out regarding our ongoing partnership through the On-the-Job Training (OJT) "+
			"program. We appreciate your continued collaboration in providing internship opportunities "+
			"for our students.\n\n"+
			"Best regards,\nPUP OJT Administration\nPolytechnic University of the Philippines",
		contact)
	return letter
}

func formatExpiry(hte domain.HTE) string {
	if hte.MOAEndDate == nil {
		return "(no date on record)"
	}
	return hte.MOAEndDate.Format("January 2, 2006")
}
