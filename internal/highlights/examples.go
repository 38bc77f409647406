package highlights

// ChessBook returns a small sample book with one highlight of each kind.
func ChessBook() *Book {
	return NewBook(
		"How Life Imitates Chess: Making the Right Moves, from the Board to the Boardroom",
		"Garry Kasparov",
		NewQuote(
			"the reality is that we discard our decisions almost as soon as we make them",
			NewLocation(157, "kindle://book?action=open&asin=B0049U443Q&location=157"),
		),
		NewNote(
			"Create a personalized map of your decision-making process",
			NewLocation(294, "kindle://book?action=open&asin=B0049U443Q&location=294"),
		),
		NewComment(
			"Drawing it as an actual map might be fun",
			"The map tells you which areas of your mind are well-known to you and which are still uncharted.",
			NewLocation(295, "kindle://book?action=open&asin=B0049U443Q&location=295"),
		),
	)
}
