package cmd

import (
	"github.com/pwagen/cli/internal/output"
	"github.com/pwagen/cli/internal/templates"
)

// printFollowUps prints post-generation steps: npm installs and push
// notification setup.
func printFollowUps(req templates.Request) {
	if req.Approach == templates.ApproachSerwist {
		output.Println("Install dependencies:")
		output.Println("  " + output.StyleCommand.Render("npm install @serwist/next && npm install -D serwist"))
		output.Println("")
	}

	if req.Push {
		output.Println("Generate VAPID keys:")
		output.Println("  " + output.StyleCommand.Render("npx web-push generate-vapid-keys"))
		output.Println("")
		output.Println("Add to .env:")
		output.Println("  NEXT_PUBLIC_VAPID_PUBLIC_KEY=...")
		output.Println("  VAPID_PRIVATE_KEY=...")
		output.Println("  VAPID_SUBJECT=mailto:your@email.com")
		output.Println("")

		if req.Approach == templates.ApproachSerwist {
			output.Println("Install web-push for server-side:")
			output.Println("  " + output.StyleCommand.Render("npm install web-push"))
			output.Println("")
		}
	}
}
