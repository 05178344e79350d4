package extraction

// Weights assigned to inferred candidates. Explicit textual mentions
// always accumulate the segment weight instead; see candidates.go.
const (
	clusterNewWeight   = 1.5
	clusterBoostWeight = 0.5
	parentInferWeight  = 0.8
)

// skillClusters maps lowercase stack names and role phrases to the
// constituent skills they imply. Detection is a plain substring search
// over the lowercased full text. Short keys like "cdl" can match inside
// unrelated words; the matching strategy is intentionally loose and the
// precision gap is accepted.
var skillClusters = map[string][]string{
	// Technology stacks
	"mern stack":  {"MongoDB", "Express.js", "React", "Node.js"},
	"mean stack":  {"MongoDB", "Express.js", "Angular", "Node.js"},
	"mevn stack":  {"MongoDB", "Express.js", "Vue", "Node.js"},
	"lamp stack":  {"Linux", "Apache", "MySQL", "PHP"},
	"jamstack":    {"JavaScript", "REST APIs", "HTML"},
	"elk stack":   {"Elasticsearch", "Logstash", "Kibana"},
	"full stack":  {"JavaScript", "HTML", "CSS"},
	"t3 stack":    {"TypeScript", "Next.js", "Prisma"},

	// Technical roles
	"frontend developer":  {"JavaScript", "HTML", "CSS"},
	"backend developer":   {"REST APIs", "SQL"},
	"devops engineer":     {"Docker", "Kubernetes", "CI/CD", "Linux"},
	"site reliability":    {"Linux", "Monitoring", "CI/CD"},
	"data scientist":      {"Python", "Machine Learning", "Statistics", "SQL"},
	"data analyst":        {"SQL", "Excel", "Data Visualization"},
	"data engineer":       {"SQL", "ETL", "Python"},
	"machine learning engineer": {"Python", "Machine Learning", "MLOps"},
	"security analyst":    {"Network Security", "SIEM", "Incident Response"},
	"qa engineer":         {"Quality Assurance", "Test Automation"},
	"scrum master":        {"Agile Methodology", "Project Management"},

	// Healthcare roles
	"registered nurse":    {"Patient Care", "Medication Administration", "Electronic Health Records", "HIPAA Compliance"},
	"licensed practical nurse": {"Patient Care", "Medication Administration", "Vital Signs"},
	"certified nursing assistant": {"Patient Care", "Vital Signs", "Daily Living Assistance"},
	"medical assistant":   {"Patient Care", "Phlebotomy", "Electronic Health Records"},
	"pharmacy technician": {"Medication Dispensing", "Inventory Management", "HIPAA Compliance"},
	"dental hygienist":    {"Dental Cleaning", "Patient Care", "Radiography"},

	// Trades and logistics roles
	"master electrician":  {"Electrical Wiring", "Circuit Installation", "Electrical Code Compliance", "Blueprint Reading"},
	"journeyman electrician": {"Electrical Wiring", "Blueprint Reading", "Electrical Code Compliance"},
	"hvac technician":     {"HVAC", "Preventive Maintenance", "Refrigeration"},
	"cdl":                 {"Commercial Driving", "DOT Compliance", "Route Planning"},
	"truck driver":        {"Commercial Driving", "Route Planning", "Vehicle Inspection"},
	"forklift operator":   {"Forklift Operation", "Warehouse Management", "OSHA Compliance"},
	"welder":              {"Welding", "Blueprint Reading", "Metal Fabrication"},

	// Food service and hospitality roles
	"line cook":      {"Food Preparation", "Kitchen Safety", "Food Safety"},
	"sous chef":      {"Food Preparation", "Menu Planning", "Kitchen Management"},
	"executive chef": {"Menu Planning", "Kitchen Management", "Food Cost Control"},
	"bartender":      {"Bartending", "Customer Service", "Point of Sale"},
	"barista":        {"Coffee Preparation", "Customer Service", "Point of Sale"},

	// Office and finance roles
	"staff accountant":     {"Accounting", "GAAP", "Financial Analysis"},
	"bookkeeper":           {"Bookkeeping", "QuickBooks", "Accounts Payable"},
	"executive assistant":  {"Scheduling", "Office Administration", "Customer Service"},
	"account executive":    {"Sales", "CRM", "Negotiation"},
	"paralegal":            {"Legal Research", "Document Preparation", "Case Management"},
}

// skillParents maps a detected child skill to the parent skills it
// implies. Parents are added as inferred candidates only when absent.
var skillParents = map[string][]string{
	"React":        {"JavaScript"},
	"React Native": {"JavaScript", "React"},
	"Angular":      {"JavaScript", "TypeScript"},
	"Vue":          {"JavaScript"},
	"Svelte":       {"JavaScript"},
	"Next.js":      {"React", "JavaScript"},
	"Nuxt":         {"Vue", "JavaScript"},
	"jQuery":       {"JavaScript"},
	"Redux":        {"JavaScript"},
	"Node.js":      {"JavaScript"},
	"Express.js":   {"Node.js", "JavaScript"},
	"NestJS":       {"Node.js", "TypeScript"},
	"TypeScript":   {"JavaScript"},
	"Django":       {"Python"},
	"Flask":        {"Python"},
	"FastAPI":      {"Python"},
	"Pandas":       {"Python"},
	"NumPy":        {"Python"},
	"PyTorch":      {"Python", "Machine Learning"},
	"TensorFlow":   {"Python", "Machine Learning"},
	"Keras":        {"Python", "Machine Learning"},
	"scikit-learn": {"Python", "Machine Learning"},
	"pytest":       {"Python"},
	"Ruby on Rails": {"Ruby"},
	"Laravel":      {"PHP"},
	"Symfony":      {"PHP"},
	"Spring":       {"Java"},
	"Spring Boot":  {"Java"},
	"JUnit":        {"Java"},
	"ASP.NET":      {".NET", "C#"},
	"SwiftUI":      {"Swift"},
	"Jetpack Compose": {"Kotlin"},
	"Flutter":      {"Dart"},
	"Deep Learning": {"Machine Learning"},
	"NLP":          {"Machine Learning"},
	"Computer Vision": {"Machine Learning"},
	"MLOps":        {"Machine Learning"},
	"Kubernetes":   {"Docker"},
	"Helm":         {"Kubernetes"},
	"OpenShift":    {"Kubernetes"},
	"Sass":         {"CSS"},
	"Tailwind CSS": {"CSS"},
	"Bootstrap":    {"CSS"},
	"PL/SQL":       {"SQL"},
	"T-SQL":        {"SQL"},
	"BigQuery":     {"SQL"},
	"dbt":          {"SQL"},
	"Electronic Health Records": {"HIPAA Compliance"},
	"Medical Coding":            {"HIPAA Compliance"},
	"Medication Administration": {"Patient Care"},
	"IV Therapy":                {"Patient Care"},
	"Wound Care":                {"Patient Care"},
	"ACLS":                      {"BLS"},
	"Circuit Installation":      {"Electrical Wiring"},
	"Accounts Payable":          {"Accounting"},
	"Accounts Receivable":       {"Accounting"},
	"Bookkeeping":               {"Accounting"},
}

// toolNames is the fixed membership set that routes a classified skill
// into the tools list rather than the technical list.
var toolNames = map[string]bool{
	"Git":        true,
	"GitHub":     true,
	"GitLab":     true,
	"Bitbucket":  true,
	"Jira":       true,
	"Confluence": true,
	"Slack":      true,
	"Trello":     true,
	"Asana":      true,
	"Notion":     true,
	"Figma":      true,
	"Sketch":     true,
	"Adobe XD":   true,
	"Photoshop":  true,
	"Illustrator": true,
	"Postman":    true,
	"Swagger":    true,
	"VS Code":    true,
	"IntelliJ":   true,
	"Eclipse":    true,
	"Vim":        true,
	"Excel":      true,
	"Power BI":   true,
	"Tableau":    true,
	"Looker":     true,
	"Salesforce": true,
	"SAP":        true,
	"HubSpot":    true,
	"QuickBooks": true,
	"SharePoint": true,
	"WordPress":  true,
	"Shopify":    true,
	"Webflow":    true,
	"Zapier":     true,
	"ServiceNow": true,
	"Jenkins":    true,
	"Grafana":    true,
	"Datadog":    true,
	"Splunk":     true,
	"Epic Systems": true,
	"Cerner":     true,
}
