package extraction

// skillAliases maps lowercase aliases (1-4 token phrases) to canonical
// skill names. The table is immutable configuration: extraction logic
// never mutates it, and tuning the vocabulary never touches the scanner.
var skillAliases = map[string]string{
	// Languages
	"python":       "Python",
	"python3":      "Python",
	"java":         "Java",
	"javascript":   "JavaScript",
	"js":           "JavaScript",
	"ecmascript":   "JavaScript",
	"typescript":   "TypeScript",
	"ts":           "TypeScript",
	"go":           "Go",
	"golang":       "Go",
	"c":            "C",
	"c++":          "C++",
	"cpp":          "C++",
	"c#":           "C#",
	"csharp":       "C#",
	"ruby":         "Ruby",
	"php":          "PHP",
	"swift":        "Swift",
	"kotlin":       "Kotlin",
	"rust":         "Rust",
	"scala":        "Scala",
	"r":            "R",
	"perl":         "Perl",
	"objective-c":  "Objective-C",
	"dart":         "Dart",
	"elixir":       "Elixir",
	"haskell":      "Haskell",
	"clojure":      "Clojure",
	"lua":          "Lua",
	"matlab":       "MATLAB",
	"groovy":       "Groovy",
	"bash":         "Bash",
	"shell":        "Shell Scripting",
	"shell scripting": "Shell Scripting",
	"powershell":   "PowerShell",
	"sql":          "SQL",
	"plsql":        "PL/SQL",
	"pl/sql":       "PL/SQL",
	"t-sql":        "T-SQL",
	"html":         "HTML",
	"html5":        "HTML",
	"css":          "CSS",
	"css3":         "CSS",
	"sass":         "Sass",
	"scss":         "Sass",
	"less":         "Less",
	"cobol":        "COBOL",
	"fortran":      "Fortran",
	"assembly":     "Assembly",
	"solidity":     "Solidity",
	"vba":          "VBA",
	"visual basic": "Visual Basic",

	// Frontend frameworks and libraries
	"react":        "React",
	"react.js":     "React",
	"reactjs":      "React",
	"react native": "React Native",
	"angular":      "Angular",
	"angularjs":    "Angular",
	"vue":          "Vue",
	"vue.js":       "Vue",
	"vuejs":        "Vue",
	"svelte":       "Svelte",
	"next.js":      "Next.js",
	"nextjs":       "Next.js",
	"nuxt":         "Nuxt",
	"nuxt.js":      "Nuxt",
	"jquery":       "jQuery",
	"redux":        "Redux",
	"tailwind":     "Tailwind CSS",
	"tailwind css": "Tailwind CSS",
	"bootstrap":    "Bootstrap",
	"webpack":      "Webpack",
	"vite":         "Vite",
	"babel":        "Babel",
	"ember":        "Ember",
	"backbone":     "Backbone",
	"storybook":    "Storybook",

	// Backend frameworks
	"node":          "Node.js",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"express":       "Express.js",
	"express.js":    "Express.js",
	"expressjs":     "Express.js",
	"nestjs":        "NestJS",
	"nest.js":       "NestJS",
	"django":        "Django",
	"flask":         "Flask",
	"fastapi":       "FastAPI",
	"rails":         "Ruby on Rails",
	"ruby on rails": "Ruby on Rails",
	"laravel":       "Laravel",
	"symfony":       "Symfony",
	"spring":        "Spring",
	"spring boot":   "Spring Boot",
	"springboot":    "Spring Boot",
	"asp.net":       "ASP.NET",
	".net":          ".NET",
	"dotnet":        ".NET",
	".net core":     ".NET",
	"gin":           "Gin",
	"fiber":         "Fiber",
	"grpc":          "gRPC",
	"graphql":       "GraphQL",
	"rest":          "REST APIs",
	"rest api":      "REST APIs",
	"rest apis":     "REST APIs",
	"restful apis":  "REST APIs",
	"websockets":    "WebSockets",
	"phoenix":       "Phoenix",

	// Databases and storage
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"mysql":         "MySQL",
	"mariadb":       "MariaDB",
	"mongodb":       "MongoDB",
	"mongo":         "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",
	"cassandra":     "Cassandra",
	"dynamodb":      "DynamoDB",
	"sqlite":        "SQLite",
	"oracle":        "Oracle Database",
	"sql server":    "SQL Server",
	"mssql":         "SQL Server",
	"neo4j":         "Neo4j",
	"couchbase":     "Couchbase",
	"snowflake":     "Snowflake",
	"bigquery":      "BigQuery",
	"redshift":      "Redshift",
	"memcached":     "Memcached",
	"influxdb":      "InfluxDB",
	"clickhouse":    "ClickHouse",

	// Cloud and infrastructure
	"aws":                  "AWS",
	"amazon web services":  "AWS",
	"azure":                "Azure",
	"microsoft azure":      "Azure",
	"gcp":                  "Google Cloud",
	"google cloud":         "Google Cloud",
	"google cloud platform": "Google Cloud",
	"heroku":               "Heroku",
	"digitalocean":         "DigitalOcean",
	"cloudflare":           "Cloudflare",
	"lambda":               "AWS Lambda",
	"aws lambda":           "AWS Lambda",
	"ec2":                  "EC2",
	"s3":                   "S3",
	"docker":               "Docker",
	"kubernetes":           "Kubernetes",
	"k8s":                  "Kubernetes",
	"helm":                 "Helm",
	"terraform":            "Terraform",
	"ansible":              "Ansible",
	"puppet":               "Puppet",
	"chef":                 "Chef",
	"vagrant":              "Vagrant",
	"jenkins":              "Jenkins",
	"circleci":             "CircleCI",
	"travis ci":            "Travis CI",
	"github actions":       "GitHub Actions",
	"gitlab ci":            "GitLab CI",
	"ci/cd":                "CI/CD",
	"cicd":                 "CI/CD",
	"devops":               "DevOps",
	"nginx":                "Nginx",
	"apache":               "Apache",
	"linux":                "Linux",
	"unix":                 "Unix",
	"ubuntu":               "Linux",
	"kafka":                "Kafka",
	"apache kafka":         "Kafka",
	"rabbitmq":             "RabbitMQ",
	"microservices":        "Microservices",
	"serverless":           "Serverless",
	"prometheus":           "Prometheus",
	"grafana":              "Grafana",
	"datadog":              "Datadog",
	"splunk":               "Splunk",
	"openshift":            "OpenShift",

	// Data and machine learning
	"machine learning":  "Machine Learning",
	"ml":                "Machine Learning",
	"deep learning":     "Deep Learning",
	"ai":                "Artificial Intelligence",
	"artificial intelligence": "Artificial Intelligence",
	"nlp":               "NLP",
	"natural language processing": "NLP",
	"computer vision":   "Computer Vision",
	"tensorflow":        "TensorFlow",
	"pytorch":           "PyTorch",
	"keras":             "Keras",
	"scikit-learn":      "scikit-learn",
	"sklearn":           "scikit-learn",
	"pandas":            "Pandas",
	"numpy":             "NumPy",
	"scipy":             "SciPy",
	"matplotlib":        "Matplotlib",
	"jupyter":           "Jupyter",
	"spark":             "Apache Spark",
	"apache spark":      "Apache Spark",
	"pyspark":           "Apache Spark",
	"hadoop":            "Hadoop",
	"airflow":           "Airflow",
	"dbt":               "dbt",
	"etl":               "ETL",
	"data analysis":     "Data Analysis",
	"data engineering":  "Data Engineering",
	"data science":      "Data Science",
	"data modeling":     "Data Modeling",
	"data visualization": "Data Visualization",
	"statistics":        "Statistics",
	"statistical analysis": "Statistics",
	"llm":               "LLMs",
	"llms":              "LLMs",
	"langchain":         "LangChain",
	"hugging face":      "Hugging Face",
	"opencv":            "OpenCV",
	"mlops":             "MLOps",

	// Mobile
	"ios":             "iOS Development",
	"android":         "Android Development",
	"flutter":         "Flutter",
	"xamarin":         "Xamarin",
	"swiftui":         "SwiftUI",
	"jetpack compose": "Jetpack Compose",

	// Tools and platforms
	"git":        "Git",
	"github":     "GitHub",
	"gitlab":     "GitLab",
	"bitbucket":  "Bitbucket",
	"jira":       "Jira",
	"confluence": "Confluence",
	"slack":      "Slack",
	"trello":     "Trello",
	"asana":      "Asana",
	"notion":     "Notion",
	"figma":      "Figma",
	"sketch":     "Sketch",
	"adobe xd":   "Adobe XD",
	"photoshop":  "Photoshop",
	"illustrator": "Illustrator",
	"postman":    "Postman",
	"swagger":    "Swagger",
	"vs code":    "VS Code",
	"intellij":   "IntelliJ",
	"eclipse":    "Eclipse",
	"vim":        "Vim",
	"excel":      "Excel",
	"microsoft excel": "Excel",
	"power bi":   "Power BI",
	"powerbi":    "Power BI",
	"tableau":    "Tableau",
	"looker":     "Looker",
	"salesforce": "Salesforce",
	"sap":        "SAP",
	"hubspot":    "HubSpot",
	"quickbooks": "QuickBooks",
	"sharepoint": "SharePoint",
	"wordpress":  "WordPress",
	"shopify":    "Shopify",
	"webflow":    "Webflow",
	"zapier":     "Zapier",
	"servicenow": "ServiceNow",
	"selenium":   "Selenium",
	"cypress":    "Cypress",
	"playwright": "Playwright",
	"jest":       "Jest",
	"mocha":      "Mocha",
	"junit":      "JUnit",
	"pytest":     "pytest",

	// Design and product
	"ui":            "UI Design",
	"ux":            "UX Design",
	"ui/ux":         "UI/UX Design",
	"user experience": "UX Design",
	"user interface":  "UI Design",
	"wireframing":   "Wireframing",
	"prototyping":   "Prototyping",
	"design systems": "Design Systems",
	"product management": "Product Management",
	"a/b testing":   "A/B Testing",
	"seo":           "SEO",
	"sem":           "SEM",
	"google analytics": "Google Analytics",
	"content marketing": "Content Marketing",
	"social media marketing": "Social Media Marketing",
	"email marketing": "Email Marketing",
	"copywriting":   "Copywriting",

	// Security
	"cybersecurity":       "Cybersecurity",
	"penetration testing": "Penetration Testing",
	"pen testing":         "Penetration Testing",
	"network security":    "Network Security",
	"information security": "Information Security",
	"infosec":             "Information Security",
	"siem":                "SIEM",
	"vulnerability assessment": "Vulnerability Assessment",
	"incident response":   "Incident Response",
	"oauth":               "OAuth",
	"encryption":          "Encryption",

	// Healthcare
	"patient care":      "Patient Care",
	"phlebotomy":        "Phlebotomy",
	"medical coding":    "Medical Coding",
	"icd-10":            "Medical Coding",
	"hipaa":             "HIPAA Compliance",
	"hipaa compliance":  "HIPAA Compliance",
	"ehr":               "Electronic Health Records",
	"emr":               "Electronic Health Records",
	"electronic health records": "Electronic Health Records",
	"epic":              "Epic Systems",
	"cerner":            "Cerner",
	"medication administration": "Medication Administration",
	"iv therapy":        "IV Therapy",
	"triage":            "Triage",
	"cpr":               "CPR",
	"bls":               "BLS",
	"acls":              "ACLS",
	"telemetry":         "Telemetry",
	"wound care":        "Wound Care",

	// Trades and logistics
	"welding":             "Welding",
	"carpentry":           "Carpentry",
	"plumbing":            "Plumbing",
	"hvac":                "HVAC",
	"electrical wiring":   "Electrical Wiring",
	"blueprint reading":   "Blueprint Reading",
	"forklift":            "Forklift Operation",
	"forklift operation":  "Forklift Operation",
	"osha":                "OSHA Compliance",
	"osha compliance":     "OSHA Compliance",
	"commercial driving":  "Commercial Driving",
	"route planning":      "Route Planning",
	"inventory management": "Inventory Management",
	"supply chain":        "Supply Chain Management",
	"supply chain management": "Supply Chain Management",
	"warehouse management": "Warehouse Management",
	"quality control":     "Quality Control",
	"quality assurance":   "Quality Assurance",
	"qa":                  "Quality Assurance",
	"lean manufacturing":  "Lean Manufacturing",
	"six sigma":           "Six Sigma",
	"cnc machining":       "CNC Machining",
	"cnc":                 "CNC Machining",
	"preventive maintenance": "Preventive Maintenance",

	// Food service and hospitality
	"food preparation": "Food Preparation",
	"food safety":      "Food Safety",
	"servsafe":         "Food Safety",
	"kitchen safety":   "Kitchen Safety",
	"menu planning":    "Menu Planning",
	"bartending":       "Bartending",
	"customer service": "Customer Service",
	"point of sale":    "Point of Sale",
	"pos":              "Point of Sale",
	"event planning":   "Event Planning",

	// Finance and office
	"accounting":          "Accounting",
	"bookkeeping":         "Bookkeeping",
	"accounts payable":    "Accounts Payable",
	"accounts receivable": "Accounts Receivable",
	"payroll":             "Payroll",
	"financial analysis":  "Financial Analysis",
	"financial modeling":  "Financial Modeling",
	"budgeting":           "Budgeting",
	"forecasting":         "Forecasting",
	"auditing":            "Auditing",
	"tax preparation":     "Tax Preparation",
	"gaap":                "GAAP",
	"risk management":     "Risk Management",
	"data entry":          "Data Entry",
	"crm":                 "CRM",
	"erp":                 "ERP",
	"scheduling":          "Scheduling",
	"office administration": "Office Administration",
	"recruiting":          "Recruiting",
	"onboarding":          "Onboarding",
	"sales":               "Sales",
	"business development": "Business Development",
	"negotiation":         "Negotiation",
	"cold calling":        "Cold Calling",
	"lead generation":     "Lead Generation",
}

// ambiguousTokens are short aliases that collide with ordinary English
// or initials. They are only accepted when technical context appears
// nearby; see candidates.go.
var ambiguousTokens = map[string]bool{
	"r":  true,
	"c":  true,
	"go": true,
	"ai": true,
	"ml": true,
	"ui": true,
	"ux": true,
}

// contextKeywords mark a span of text as technical enough to accept an
// ambiguous short token.
var contextKeywords = []string{
	"programming", "programmer", "developer", "development", "engineer",
	"engineering", "software", "language", "framework", "technology",
	"technical", "computer", "code", "coding", "data", "machine",
	"backend", "frontend", "full stack", "scripting", "statistical",
	"design", "designer",
}
