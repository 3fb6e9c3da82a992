package styles

func EmbeddedStyles() []byte { return embeddedStyles }
