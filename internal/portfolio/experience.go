package portfolio

// WorkExperience lists work history, most recent first.
var WorkExperience = []Experience{
	{
		Position: "Python Web Scraper (Contract)",
		Company:  "Associated Press",
		Href:     "https://www.ap.org/",
		Duration: "September 2025 - Present",
		Tech:     []string{"Python", "BeautifulSoup", "Requests", "SQLite"},
		Responsibilities: []string{
			"Developed a Python-based web scraper to extract news articles from various online sources.",
			"Utilized BeautifulSoup and Requests libraries to navigate and parse HTML content efficiently.",
			"Implemented data storage solutions using SQLite to organize and manage scraped data.",
			"Ensured compliance with website terms of service and ethical scraping practices.",
		},
	},
	{
		Position: "Software Developer",
		Company:  "iConsult Collaborative",
		Href:     "https://professionalstudies.syracuse.edu/academics/iconsult-collaborative-at-syracuse-university/",
		Duration: "October 2023 - July 2025",
		Tech:     []string{"Node.js", "React", "Docker", "Kubernetes", "SQL", "PLSQL", "GitLab", "AWS"},
		Responsibilities: []string{
			"Developed and deployed RESTful APIs and backend services using Spring Boot and Node.js for NGO and e-commerce clients.",
			"Refactored PL/SQL queries and optimized data pipelines, improving query performance by 37%.",
			"Containerized microservices with Docker and Kubernetes, achieving 99.9% uptime across multiple environments.",
			"Automated build and deployment workflows using GitLab CI/CD, reducing release time by 90%.",
			"Implemented system monitoring and logging with AWS CloudWatch to detect and resolve issues within minutes.",
		},
	},
	{
		Position: "Technical Support Specialist (Graduate)",
		Company:  "Syracuse University Libraries",
		Href:     "https://library.syracuse.edu/",
		Duration: "August 2024 - May 2025",
		Tech:     []string{"Bash", "PowerShell", "Linux/Unix", "Networking", "Excel"},
		Responsibilities: []string{
			"Automated server health checks and data backups using Bash and PowerShell, saving 270+ staff hours annually.",
			"Resolved 15K+ Tier-1/2 support tickets with 11-minute average response time across cross-platform systems.",
		},
	},
	{
		Position: "Senior Software Engineer",
		Company:  "Digital Edu IT Solutions Pvt. Ltd.",
		Href:     "https://digitaledu.net/",
		Duration: "August 2020 - April 2023",
		Tech:     []string{"Python", "Angular", "PHP", "Oracle DB", "Kubernetes", "Bash", "VMware", "Hugging Face", "LangChain"},
		Responsibilities: []string{
			"Fine-tuned LLaMA and BERT models using LoRA/QLoRA, boosting academic performance accuracy by 18%.",
			"Integrated LLMs into ERP/LMS via LangChain, vector DBs (e.g., FAISS), serving 10K+ students with real-time NLP.",
			"Built modular LMS features in Angular and PHP with PL/SQL, improving content delivery efficiency by 40%.",
			"Refactored SQL and PL/SQL queries, cutting LMS load times by 45% and improving student retention analytics.",
		},
	},
}
