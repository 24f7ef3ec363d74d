// rss — Normalizer для RSS 2.0 новостных лент.
package rss

// document — корневая структура RSS-ленты.
type document struct {
	Channel channel `xml:"channel"`
}

// channel - RSS-канал, содержащий список новостей.
type channel struct {
	Items []item `xml:"item"`
}

// item описывает одну новость в RSS-ленте.
type item struct {
	// Title — заголовок новости. Записи без заголовка отбрасываются.
	Title string `xml:"title"`
	// Link — ссылка на материал. Может быть пустым/мусорным у некоторых
	// издателей, тогда рассматриваем guid (если он — полноценный URL)
	// как fallback.
	Link string `xml:"link"`
	// GUID — «перманентный» идентификатор записи. У некоторых источников он
	// содержит URL и может использоваться как Link, даже если isPermaLink="false".
	GUID guid `xml:"guid"`
	// PubDate — дата публикации в строковом виде.
	PubDate string `xml:"pubDate"`
	// Description — краткое описание/тизер. Часто приходит внутри CDATA и с HTML.
	Description string `xml:"description"`
}

// guid — обёртка над <guid> с атрибутом isPermaLink.
type guid struct {
	// IsPermaLink — строковый флаг "true"/"false".
	IsPermaLink string `xml:"isPermaLink,attr"`
	// Value — текстовое содержимое <guid>.
	Value string `xml:",chardata"`
}
