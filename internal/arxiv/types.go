// arxiv — Normalizer и конструктор запросов для ArXiv Atom API.
package arxiv

// feed — корневая структура Atom-ответа ArXiv.
type feed struct {
	Entries []entry `xml:"entry"`
}

// entry — одна статья в Atom-фиде.
type entry struct {
	// Title — название статьи.
	Title string `xml:"title"`
	// Summary — аннотация.
	Summary string `xml:"summary"`
	// ID — постоянная ссылка на статью; используется и как source_url.
	ID string `xml:"id"`
	// Published/Updated — метки времени в RFC3339.
	Published string `xml:"published"`
	Updated   string `xml:"updated"`
	// Authors — авторы статьи.
	Authors []author `xml:"author"`
	// DOI — расширение arxiv:doi, присутствует не у всех статей.
	DOI string `xml:"http://arxiv.org/schemas/atom doi"`
	// PrimaryCategory — расширение arxiv:primary_category.
	PrimaryCategory category `xml:"http://arxiv.org/schemas/atom primary_category"`
}

// author — обёртка над <author><name>.
type author struct {
	Name string `xml:"name"`
}

// category — элемент с атрибутом term.
type category struct {
	Term string `xml:"term,attr"`
}
