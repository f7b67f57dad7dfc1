package portfolio

// SkillGroupOrder fixes the display order of skill categories.
var SkillGroupOrder = []string{
	"Frontend",
	"Backend",
	"Database",
	"DevOps & Cloud",
	"APIs & Message Queue",
	"Version Control",
	"Tools & Productivity",
}

// SkillSet maps category to skills. Icon identifiers resolve through
// IconClasses; unknown identifiers fall back to the default style.
var SkillSet = map[string][]Skill{
	"Frontend": {
		{Name: "React", Icon: "react"},
		{Name: "Next.js", Icon: "nextjs"},
		{Name: "TypeScript", Icon: "typescript"},
		{Name: "JavaScript", Icon: "javascript"},
		{Name: "Tailwind CSS", Icon: "tailwind"},
		{Name: "Bootstrap", Icon: "bootstrap"},
		{Name: "HTML5", Icon: "html5"},
		{Name: "CSS3", Icon: "css3"},
	},
	"Backend": {
		{Name: "Node.js", Icon: "nodejs"},
		{Name: "Python", Icon: "python"},
		{Name: "Java", Icon: "java"},
		{Name: "Express.js", Icon: "express"},
		{Name: "Flask", Icon: "flask"},
		{Name: "Django", Icon: "django"},
		{Name: "Spring Boot", Icon: "springboot"},
	},
	"Database": {
		{Name: "PostgreSQL", Icon: "postgresql"},
		{Name: "MongoDB", Icon: "mongodb"},
		{Name: "MySQL", Icon: "mysql"},
		{Name: "Firebase", Icon: "firebase"},
		{Name: "Redis", Icon: "redis"},
		{Name: "Elasticsearch", Icon: "elasticsearch"},
	},
	"DevOps & Cloud": {
		{Name: "AWS", Icon: "aws"},
		{Name: "Docker", Icon: "docker"},
		{Name: "Kubernetes", Icon: "kubernetes"},
		{Name: "Linux", Icon: "linux"},
		{Name: "Nginx", Icon: "nginx"},
		{Name: "Apache", Icon: "apache"},
	},
	"APIs & Message Queue": {
		{Name: "GraphQL", Icon: "graphql"},
		{Name: "RabbitMQ", Icon: "rabbitmq"},
		{Name: "REST API", Icon: "postman"},
	},
	"Version Control": {
		{Name: "Git", Icon: "git"},
		{Name: "GitHub", Icon: "github"},
		{Name: "GitLab", Icon: "gitlab"},
	},
	"Tools & Productivity": {
		{Name: "Postman", Icon: "postman"},
		{Name: "Jira", Icon: "jira"},
		{Name: "Notion", Icon: "notion"},
		{Name: "Slack", Icon: "slack"},
	},
}

// IconClasses is the fixed icon-to-style lookup table. Dispatch goes through
// this map rather than dynamic property access.
var IconClasses = map[string]string{
	"react":         "bg-[#61dafb]",
	"nextjs":        "bg-[#000000]",
	"typescript":    "bg-[#3178c6]",
	"javascript":    "bg-[#f7df1e]",
	"tailwind":      "bg-[#06b6d4]",
	"bootstrap":     "bg-[#7952b3]",
	"html5":         "bg-[#e34c26]",
	"css3":          "bg-[#1572b6]",
	"nodejs":        "bg-[#339933]",
	"python":        "bg-[#3776ab]",
	"java":          "bg-[#007396]",
	"express":       "bg-[#000000]",
	"flask":         "bg-[#000000]",
	"django":        "bg-[#092e20]",
	"springboot":    "bg-[#6db33f]",
	"postgresql":    "bg-[#336791]",
	"mongodb":       "bg-[#13aa52]",
	"mysql":         "bg-[#00758f]",
	"firebase":      "bg-[#ffa000]",
	"redis":         "bg-[#dc382d]",
	"elasticsearch": "bg-[#005571]",
	"aws":           "bg-[#ff9900]",
	"docker":        "bg-[#2496ed]",
	"kubernetes":    "bg-[#326ce5]",
	"linux":         "bg-[#fcc624]",
	"nginx":         "bg-[#009639]",
	"apache":        "bg-[#d70015]",
	"graphql":       "bg-[#e10098]",
	"rabbitmq":      "bg-[#ff6600]",
	"postman":       "bg-[#ff6c02]",
	"git":           "bg-[#f1502f]",
	"github":        "bg-[#181717]",
	"gitlab":        "bg-[#fc6d26]",
	"jira":          "bg-[#0052cc]",
	"notion":        "bg-[#000000]",
	"slack":         "bg-[#4a154b]",
}

const defaultIconClass = "bg-[#6b7280]"

// IconClass resolves an icon identifier to its display style.
func IconClass(icon string) string {
	if class, ok := IconClasses[icon]; ok {
		return class
	}
	return defaultIconClass
}
