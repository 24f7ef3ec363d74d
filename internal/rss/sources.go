package rss

// Source — описание одной новостной ленты.
type Source struct {
	// Topic — тема ленты: TopicAI или TopicSemiconductor.
	Topic string `yaml:"topic"`
	// Name — человекочитаемое имя источника; используется как ключ
	// дескриптора в сообщениях об ошибках.
	Name string `yaml:"name"`
	// URL — адрес RSS-ленты.
	URL string `yaml:"url"`
}

// Темы встроенных лент.
const (
	TopicAI            = "ai"
	TopicSemiconductor = "semiconductor"
)

// DefaultSources — встроенный набор лент по темам AI и полупроводников.
var DefaultSources = []Source{
	{Topic: TopicAI, Name: "TechCrunch AI", URL: "https://techcrunch.com/category/artificial-intelligence/feed/"},
	{Topic: TopicAI, Name: "The Verge AI", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml"},
	{Topic: TopicAI, Name: "Hacker News AI", URL: "https://hnrss.org/newest?q=AI+OR+machine+learning&count=50"},
	{Topic: TopicSemiconductor, Name: "Tech Xplore Semiconductors", URL: "https://techxplore.com/rss-feed/semiconductors/"},
	{Topic: TopicSemiconductor, Name: "Semiconductor Today", URL: "https://semiconductor-today.com/rss/news.xml"},
	{Topic: TopicSemiconductor, Name: "IEEE Spectrum Semiconductors", URL: "https://spectrum.ieee.org/feeds/topic/semiconductors.rss"},
}

// aiKeywords/semiconductorKeywords — фиксированные наборы ключевых слов
// для фильтра релевантности (регистронезависимое вхождение).
var (
	aiKeywords = []string{
		"ai",
		"artificial intelligence",
		"machine learning",
		"deep learning",
		"generative ai",
		"llm",
	}

	semiconductorKeywords = []string{
		"semiconductor",
		"chip",
		"foundry",
		"fab",
		"wafer",
		"gpu",
		"memory",
		"hbm",
	}
)

// KeywordsForTopic возвращает набор ключевых слов темы.
// Для любой темы, кроме TopicAI, действует набор полупроводников.
func KeywordsForTopic(topic string) []string {
	if topic == TopicAI {
		return aiKeywords
	}

	return semiconductorKeywords
}
