package portfolio

// EducationHistory lists degrees, most recent first.
var EducationHistory = []Education{
	{
		Institution: "Syracuse University",
		Location:    "Syracuse, NY",
		Degree:      "Master of Science in Computer Science",
		Duration:    "August 2024 - May 2026",
		Href:        "https://www.syracuse.edu",
		Highlights: []string{
			"Guided 10+ students through personalized learning sessions, improving academic and classroom performance.",
			"Coursework: Artificial Intelligence, NLP, Analysis of Algorithm, Data Mining, Cryptography, IOT, Operating Systems.",
		},
	},
	{
		Institution: "Pune University - Sinhgad College of Engineering",
		Location:    "India",
		Degree:      "Bachelor of Engineering: Information Technology",
		Duration:    "May 2020",
		Href:        "https://www.unipune.ac.in/",
		Highlights: []string{
			"Led campus technical events, demonstrating exceptional leadership, critical thinking, and management skills.",
		},
	},
	{
		Institution: "Bharti Vidyapeeth University",
		Location:    "India",
		Degree:      "Associates: Computer Technology",
		Duration:    "May 2018",
		Href:        "https://www.bvuniversity.edu.in/",
		Highlights: []string{
			"Graduated with First Class Honors, achieving a GPA of 3.5/4.0.",
		},
	},
}

// Certificates lists earned credentials in display order.
var Certificates = []Certificate{
	{
		ID:        "mozilla-js-foundations-professional-certificate-2025-09",
		Name:      "JavaScript Foundations Professional Certificate by Mozilla",
		Issuer:    "Mozilla",
		IssueDate: "2025-09",
		Skills:    []string{"Web Development", "JavaScript"},
	},
	{
		ID:        "scrimba-intro-to-ai-engineering-2025-10",
		Name:      "Intro to AI Engineering",
		Issuer:    "Scrimba",
		IssueDate: "2025-10",
		Skills:    []string{"Artificial Intelligence (AI)", "JavaScript"},
	},
	{
		ID:        "linkedin-it-security-foundations-network-security-2025-09",
		Name:      "IT Security Foundations: Network Security",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-09",
		Skills:    []string{"Network Security"},
	},
	{
		ID:        "linkedin-javascript-essential-training-2025-09",
		Name:      "JavaScript Essential Training",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-09",
		Skills:    []string{"JavaScript"},
	},
	{
		ID:        "linkedin-network-administration-core-skills-2025-09",
		Name:      "Network Administration: Build Core Skills for Network Management and Security",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-09",
		Skills:    []string{"Network Security", "Network Administration", "Network Troubleshooting"},
	},
	{
		ID:        "linkedin-learning-network-troubleshooting-2025-08",
		Name:      "Learning Network Troubleshooting: Practical Network Diagnostics and Solutions",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-08",
		Skills:    []string{"Network Troubleshooting"},
	},
	{
		ID:        "linkedin-networking-foundations-ip-addressing-2025-08",
		Name:      "Networking Foundations: IP Addressing",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-08",
		Skills:    []string{"IP Addressing"},
	},
	{
		ID:        "linkedin-networking-foundations-lans-2025-08",
		Name:      "Networking Foundations: Local Area Networks (LANs)",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-08",
	},
	{
		ID:        "linkedin-networking-foundations-basics-2025-08",
		Name:      "Networking Foundations: Networking Basics",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-08",
		Skills:    []string{"Network Administration"},
	},
	{
		ID:        "linkedin-express-essentials-nodejs-2025-05",
		Name:      "Express Essentials: Build Powerful Web Apps with Node.js",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-05",
		Skills:    []string{"Web Application Development", "Express.js"},
	},
	{
		ID:        "linkedin-html-essential-training-2025-05",
		Name:      "HTML Essential Training",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-05",
		Skills:    []string{"Front-End Development", "Web Development", "HTML", "HTML Scripting"},
	},
	{
		ID:        "linkedin-learning-git-and-github-2025-05",
		Name:      "Learning Git and GitHub",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-05",
		Skills:    []string{"GitHub"},
	},
	{
		ID:        "linkedin-learning-the-javascript-language-2025-05",
		Name:      "Learning the JavaScript Language",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2025-05",
		Skills:    []string{"JavaScript"},
	},
	{
		ID:           "stanford-divide-and-conquer-2024-12",
		Name:         "Divide and Conquer, Sorting and Searching, and Randomized Algorithms",
		Issuer:       "Stanford University",
		IssueDate:    "2024-12",
		CredentialID: "U26E67KZ7XT5",
	},
	{
		ID:        "linkedin-working-with-upset-customers-2024-08",
		Name:      "Working with Upset Customers (2020)",
		Issuer:    "LinkedIn Learning",
		IssueDate: "2024-08",
		Skills:    []string{"Customer Escalation Management"},
	},
	{
		ID:        "google-technical-support-fundamentals-2021-05",
		Name:      "Technical Support Fundamentals",
		Issuer:    "Google",
		IssueDate: "2021-05",
	},
}
