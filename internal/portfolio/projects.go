package portfolio

// Projects is the projects gallery, newest first.
var Projects = []Project{
	{
		ID:          "musix",
		Title:       "Musix",
		Description: "AI generated music recommendation",
		Tags:        []string{"AI", "Music", "Recommender"},
		GithubRepo:  "lilswapnil/musix",
		Tech:        []string{"Next.js", "TypeScript", "Tailwind CSS", "Node.js", "PostgreSQL", "OpenAI API"},
		Highlights: []string{
			"Personalized recommendations using hybrid content + collaborative filtering.",
			"RAG-powered prompt context from track metadata and user history.",
			"Edge caching for sub-100ms recommendation latencies.",
		},
		Role:      "Full-Stack",
		Timeframe: "2024",
	},
	{
		ID:          "movizzz",
		Title:       "Movizzz",
		Description: "AI generated Movie recommendation",
		Tags:        []string{"AI", "Movies", "Recommender"},
		GithubRepo:  "lilswapnil/moviezzz",
		Tech:        []string{"Next.js", "TypeScript", "Python", "FastAPI", "TMDB API"},
		Highlights: []string{
			"Blends embeddings with popularity priors to improve cold-start picks.",
			"User feedback loop fine-tunes similarity weights in real-time.",
			"Server Actions stream recommendations with suspense fallbacks.",
		},
		Role:      "Full-Stack",
		Timeframe: "2024",
	},
	{
		ID:          "trends-analytics",
		Title:       "Trends Analytics & Sentiment Mining",
		Description: "Gaming Applications sentiment analysis",
		Tags:        []string{"NLP", "Sentiment", "Analytics"},
		GithubRepo:  "lilswapnil/trends-analytics",
		Tech:        []string{"Python", "Pandas", "scikit-learn", "spaCy", "Plotly", "Airflow"},
		Highlights: []string{
			"ETL pipeline scrapes reviews, deduplicates and normalizes text at scale.",
			"Domain-tuned sentiment classifier surpasses baseline by 9% F1.",
			"Interactive dashboards for trends, topics and cohorts.",
		},
		Role:      "Data/ETL",
		Timeframe: "2023",
	},
	{
		ID:          "wildlife-monitoring",
		Title:       "Smart Wildlife Monitoring",
		Description: "Real-time wildlife tracking system",
		Tags:        []string{"IoT", "Computer Vision"},
		GithubRepo:  "lilswapnil/wildlife-monitoring",
		Tech:        []string{"Raspberry Pi", "YOLOv8", "Python", "MQTT", "AWS IoT Core", "S3"},
		Highlights: []string{
			"On-device object detection with low-power edge hardware.",
			"Event-driven uploads reduce bandwidth by 70%.",
			"Geo-tagged alerts and timeline replay UI.",
		},
		Role:      "IoT/Embedded",
		Timeframe: "2023",
	},
	{
		ID:          "university-erp",
		Title:       "University Recruitment ERP System",
		Description: "Recruitment workflow and data management",
		Tags:        []string{"ERP", "Full-Stack"},
		GithubRepo:  "lilswapnil/university-erp",
		Tech:        []string{"React", "Node.js", "Express", "PostgreSQL", "Redis"},
		Highlights: []string{
			"Configurable workflows with role-based approvals.",
			"Audit trails and exportable reports for compliance.",
			"Queued jobs for bulk imports and scheduled notifications.",
		},
		Role:      "Full-Stack",
		Timeframe: "2022",
	},
	{
		ID:          "llm-from-scratch",
		Title:       "LLM from Scratch",
		Description: "Educational implementation of core Transformer/LLM components.",
		Tags:        []string{"AI", "LLM", "Transformers", "Deep Learning"},
		GithubRepo:  "lilswapnil/LLM-from-scratch",
		Tech:        []string{"Python", "PyTorch", "NumPy", "Matplotlib"},
		Highlights: []string{
			"Implements tokenization, attention, MHA, MLP blocks and training loop.",
			"Clean notebooks with step-by-step visualizations.",
			"Unit tests validate tensor shapes and gradients.",
		},
		Role:      "AI/ML",
		Timeframe: "2024",
	},
	{
		ID:          "lms-using-agenticai",
		Title:       "LMS using Agentic AI",
		Description: "Agentic AI-powered learning management system.",
		Tags:        []string{"Agentic AI", "LMS", "AI", "Full-Stack"},
		GithubRepo:  "lilswapnil/LMS-using-agenticAI",
		Tech:        []string{"Next.js", "TypeScript", "Prisma", "PostgreSQL", "LangChain", "OpenAI"},
		Highlights: []string{
			"Agent tools for quiz generation, grading and remediation plans.",
			"Context-aware tutoring from course materials and notes.",
			"Granular RBAC for admins, instructors and learners.",
		},
		Role:      "Full-Stack",
		Timeframe: "2024",
	},
	{
		ID:          "ai-assistant",
		Title:       "AI Assistant",
		Description: "Conversational assistant with tool use and LLM orchestration.",
		Tags:        []string{"AI", "Assistant", "LLM", "RAG"},
		GithubRepo:  "lilswapnil/AI-Assistant",
		Tech:        []string{"Node.js", "TypeScript", "FastAPI", "LangChain", "Pinecone"},
		Highlights: []string{
			"Tool-calling with function schemas and guarded execution.",
			"Retriever augments responses with fresh context.",
			"Streaming UI with partial thoughts and citations.",
		},
		Role:      "Assistant/Agentic",
		Timeframe: "2024",
	},
	{
		ID:          "book-scraper",
		Title:       "Book Scraper",
		Description: "Web scraper for book metadata and reviews.",
		Tags:        []string{"Scraping", "ETL", "Automation"},
		GithubRepo:  "lilswapnil/book-scraper",
		Tech:        []string{"Python", "Playwright", "BeautifulSoup", "SQLite"},
		Highlights: []string{
			"Rotating proxies and backoff for resilient crawling.",
			"Parses nested pagination and normalizes entities.",
			"CSV exports and lightweight analytics notebook.",
		},
		Role:      "Data/ETL",
		Timeframe: "2022",
	},
}

// ProjectByID returns the project with the given id, or false when absent.
func ProjectByID(id string) (Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
