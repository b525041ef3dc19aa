package notify

import (
	"bytes"
	"html/template"
)

var companyTemplate = template.Must(template.New("company").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6; border-bottom: 2px solid #3b82f6; padding-bottom: 10px;">New Job Application</h2>
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Job Position:</strong> {{.JobTitle}}</p>
    {{if .CompanyName}}<p><strong>Company:</strong> {{.CompanyName}}</p>{{end}}
    <p><strong>Applicant Name:</strong> {{.ApplicantName}}</p>
    <p><strong>Applicant Email:</strong> <a href="mailto:{{.ApplicantEmail}}">{{.ApplicantEmail}}</a></p>
  </div>
  {{if .CoverLetter}}<div style="background-color: #ffffff; padding: 20px; border-left: 4px solid #3b82f6;">
    <h3 style="color: #374151; margin-top: 0;">Application Message:</h3>
    <p style="line-height: 1.6; color: #4b5563; white-space: pre-wrap;">{{.CoverLetter}}</p>
  </div>{{end}}
  <div style="text-align: center; margin-top: 30px; padding: 20px; background-color: #f1f5f9; border-radius: 8px;">
    <p style="color: #64748b; font-size: 14px;">This application was submitted through your job portal.</p>
  </div>
</div>`))

var applicantTemplate = template.Must(template.New("applicant").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981; border-bottom: 2px solid #10b981; padding-bottom: 10px;">Application Received Successfully!</h2>
  <p style="font-size: 16px; line-height: 1.6; color: #374151;">Hi <strong>{{.ApplicantName}}</strong>,</p>
  <p style="font-size: 16px; line-height: 1.6; color: #374151;">Thank you for applying for the <strong>{{.JobTitle}}</strong> position! We have received your application and our team will review it shortly.</p>
  <div style="background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #0ea5e9;">
    <h3 style="color: #374151; margin-top: 0;">Your Application Summary:</h3>
    <p><strong>Position:</strong> {{.JobTitle}}</p>
    <p><strong>Your Email:</strong> {{.ApplicantEmail}}</p>
    {{if .CoverLetter}}<p><strong>Message Submitted:</strong></p>
    <p style="white-space: pre-wrap; color: #4b5563;">{{.CoverLetter}}</p>{{end}}
  </div>
  <p style="font-size: 16px; line-height: 1.6; color: #374151;">Best regards,<br><strong>The Hiring Team</strong></p>
  <div style="text-align: center; margin-top: 30px; padding: 20px; background-color: #f1f5f9; border-radius: 8px;">
    <p style="color: #64748b; font-size: 14px; margin: 0;">This is an automated confirmation email.</p>
  </div>
</div>`))

func render(tpl *template.Template, data ApplicationSubmitted) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
