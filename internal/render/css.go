package render

import "fmt"

// docCSSFiles maps kind segments to their hosted stylesheet names.
var docCSSFiles = map[string]string{
	"articles":     "article.css",
	"decisions":    "decision.css",
	"guidances":    "guide.css",
	"tax-treaties": "dtaa.css",
	"blogs":        "blogs.css",
}

const stylesheetCDN = "https://gtlcdn-eufeh8ffbvbvacgf.z03.azurefd.net/guide/stylesheets/prod"

func docCSSLink(docType string) string {
	file, ok := docCSSFiles[docType]
	if !ok {
		file = "article.css"
	}
	return fmt.Sprintf("<link rel='stylesheet' href='%s/%s'>", stylesheetCDN, file)
}

const baseStyles = `
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            margin: 0;
            line-height: 1.6;
            background: #f8f9fa;
            color: #333;
        }
        .container { max-width: 1200px; margin: 0 auto; padding: 0 20px; }
        .header { background: #232536; color: white; padding: 20px 0; }
        .header p { margin: 0; font-size: 1.5rem; }
        .header nav a { color: #ccc; margin-right: 20px; text-decoration: none; }
        .header nav a:hover { color: white; }
        .breadcrumb-nav { background: #e2eaf2; padding: 10px 0; border-bottom: 1px solid #e9ecef; }
        .breadcrumb-nav a { color: #007bff; text-decoration: none; }
        .breadcrumb-nav a:hover { text-decoration: underline; }
        .main-content { padding: 30px 0; }
        .document-meta {
            background: #e8f4fd;
            padding: 15px;
            border-radius: 8px;
            margin-bottom: 20px;
            border-left: 4px solid #007bff;
        }
        .bot-notice {
            background: #e3f2fd;
            border: 1px solid #1976d2;
            padding: 12px;
            margin: 20px 0;
            border-radius: 4px;
            color: #1565c0;
            text-align: center;
        }
        .footer { background: #232536; color: white; padding: 20px 0; text-align: center; }
        .footer a { color: #ccc; }`

const documentStyles = `
        .static-content {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            padding: 2rem;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .document-actions {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
        }
        .action-btn {
            margin: 0 10px;
            padding: 8px 16px;
            border: none;
            border-radius: 4px;
            cursor: pointer;
            text-decoration: none;
            display: inline-block;
        }
        .btn-primary { background: #4071a3; color: white; }
        .btn-success { background: #28a745; color: white; }`

const navigationStyles = `
        .internal-navigation {
            display: flex;
            justify-content: space-between;
            margin: 30px 0;
            padding: 20px;
            background: #e2eaf2;
            border-radius: 8px;
        }
        .internal-navigation a {
            padding: 10px 20px;
            background: #e2eaf2;
            text-decoration: none;
            border-radius: 4px;
            transition: background 0.3s;
        }
        .internal-navigation a:hover { background: #c8d7e6; }
        .nav-link {
            color: #007bff;
            text-decoration: none;
            display: flex;
            align-items: center;
        }
        .next-link { text-align: right; }
        .related-content {
            margin: 30px 0;
            padding: 20px;
            background: #e2eaf2;
            border-radius: 8px;
            border-left: 4px solid #007bff;
        }
        .related-content h3 { color: #333; margin-bottom: 15px; }
        .related-content ul { list-style: none; padding: 0; }
        .related-content li { margin-bottom: 10px; }
        .related-content a {
            color: #007bff;
            text-decoration: none;
            display: block;
            padding: 8px 0;
            border-bottom: 1px solid #d0e1f0;
        }
        .related-content a:hover { text-decoration: underline; }
        .treaty-benefits { margin-top: 30px; padding: 20px; background: #e2eaf2; border-radius: 8px; }
        .treaty-benefits h3 { color: #333; margin-bottom: 15px; }
        .treaty-benefits ul { padding-left: 20px; }
        .treaty-benefits li { margin-bottom: 8px; }`
