package mailer

import "html/template"

// The four fixed notification bodies, parameterized by record fields.
// Optional fields (phone, message) render conditionally.

var consultationConfirmationTmpl = template.Must(template.New("consultation_confirmation").Parse(`
<h2>Thank You for Your Consultation Request</h2>
<p>Dear {{.Name}},</p>
<p>We have received your consultation request and will contact you shortly.</p>
<h3>Your Request Details:</h3>
<ul>
  <li><strong>Type:</strong> {{.Type}}</li>
  <li><strong>Preferred Date:</strong> {{.PreferredDate}}</li>
  <li><strong>Contact:</strong> {{.Email}}</li>
  {{if .Phone}}<li><strong>Phone:</strong> {{.Phone}}</li>{{end}}
</ul>
<p>We typically respond within 24 hours during business hours.</p>
<p>Best regards,<br/>Civil Consulting Team</p>
`))

var consultationAlertTmpl = template.Must(template.New("consultation_alert").Parse(`
<h2>New Consultation Request</h2>
<p><strong>Client:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Type:</strong> {{.Type}}</p>
<p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
<p><strong>Message:</strong></p>
<p>{{if .Message}}{{.Message}}{{else}}No message provided{{end}}</p>
<p><strong>Received:</strong> {{.CreatedAt.Format "2 Jan 2006 15:04:05 MST"}}</p>
`))

var contactConfirmationTmpl = template.Must(template.New("contact_confirmation").Parse(`
<h2>Message Received</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for contacting Civil Consulting. We have received your message and will get back to you within 24 hours.</p>
<h3>Your Message:</h3>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p>{{.Message}}</p>
<p>Best regards,<br/>Civil Consulting Team</p>
`))

var contactAlertTmpl = template.Must(template.New("contact_alert").Parse(`
<h2>New Contact Message</h2>
<p><strong>From:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<h3>Message:</h3>
<p>{{.Message}}</p>
<p><strong>Received:</strong> {{.CreatedAt.Format "2 Jan 2006 15:04:05 MST"}}</p>
`))
