package forge

import "strings"

// MaxWidth is the container width of every generated template, in pixels.
const MaxWidth = 640

const baseStyles = `
    <style type="text/css">
        body, table, td, p, a, li { -webkit-text-size-adjust: 100%; -ms-text-size-adjust: 100%; }
        table, td { mso-table-lspace: 0pt; mso-table-rspace: 0pt; }
        img { -ms-interpolation-mode: bicubic; border: 0; height: auto; line-height: 100%; outline: none; text-decoration: none; }

        body { margin: 0; padding: 0; width: 100% !important; background-color: {brandBG}; }
        .wrapper { width: 100%; table-layout: fixed; background-color: {brandBG}; }
        .main { max-width: 640px; margin: 0 auto; background-color: {brandBG}; }

        .headline { font-family: {brandFont}; font-size: 32px; line-height: 1.2; color: {brandPrimary}; margin: 0; }
        .subheadline { font-family: {brandFont}; font-size: 18px; line-height: 1.4; color: {brandSecondary}; margin: 0; }
        .body-text { font-family: {brandFont}; font-size: 16px; line-height: 1.6; color: {brandText}; margin: 0; }

        .cta-button {
            display: inline-block;
            padding: 16px 32px;
            background-color: {brandAccent};
            color: #ffffff;
            font-family: {brandFont};
            font-size: 16px;
            font-weight: 600;
            text-decoration: none;
            border-radius: 8px;
        }

        @media screen and (max-width: 600px) {
            .main { width: 100% !important; }
            .mobile-full { width: 100% !important; display: block !important; }
            .mobile-hide { display: none !important; }
            .mobile-padding { padding: 16px !important; }
            .headline { font-size: 24px !important; }
            .subheadline { font-size: 16px !important; }
        }
    </style>
`

const outlookConditionals = `
    <!--[if mso]>
    <style type="text/css">
        body, table, td, p, a { font-family: Arial, Helvetica, sans-serif !important; }
    </style>
    <![endif]-->
`

const documentHead = `<!DOCTYPE html>
<html lang="en" xmlns="http://www.w3.org/1999/xhtml" xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="X-UA-Compatible" content="IE=edge">
    <meta name="x-apple-disable-message-reformatting">
    <meta name="format-detection" content="telephone=no,address=no,email=no,date=no,url=no">
    <title>{{emailSubject}}</title>
`

const documentBodyOpen = `</head>
<body style="margin: 0; padding: 0; background-color: {brandBG};">
    <!-- Hidden preheader text -->
    <div style="display: none; max-height: 0; overflow: hidden;">
        {{preheader}}
        &nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;
    </div>

    <table role="presentation" class="wrapper" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: {brandBG};">
        <tr>
            <td align="center" style="padding: 24px 16px;">
                <table role="presentation" class="main" width="640" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; width: 100%; background-color: {brandBG};">
`

const documentBodyClose = `
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`

// wrapDocument embeds section rows in the full email document shell. The
// result still carries brand tokens.
func wrapDocument(rows []string) string {
	var b strings.Builder
	b.WriteString(documentHead)
	b.WriteString(outlookConditionals)
	b.WriteString(baseStyles)
	b.WriteString(documentBodyOpen)
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString(documentBodyClose)
	return b.String()
}

func sectionRow(html string) string {
	return "                    <tr><td>" + html + "</td></tr>"
}
