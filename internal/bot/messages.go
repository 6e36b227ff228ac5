package bot

const helpText = "This bot uses the [grammarly](https://www.grammarly.com/grammar-check) free api " +
	"to look for mistakes in what you write.\n\n" +
	"There is only one command: `/check {text}`, which will return a list of suggestions (if any).\n\n" +
	"Or just talk to it normally (or add it to a group and give it access to messages), " +
	"and it will reply whenever it sees issues.\n\n" +
	"Source is on [GitHub](https://github.com/farcloser/grammarify). Issues/PRs welcome."

const welcomeText = "*Welcome!*\n\n" + helpText + "\n\n_Type /help to see these instructions again._"

// Sent for an explicit check that found nothing to report.
const thumbsUp = `<tg-emoji emoji-id="5368324170671202286">👍</tg-emoji>`

// Sent for an explicit check when the grammar service failed. Details go to the logs only.
const failureNotice = "oops, you broke me. pls check logs"
