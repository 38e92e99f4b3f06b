package techstack

// techAliases maps compacted free-text technology names to canonical
// names. Keys are lowercase with separators removed. Pure data.
var techAliases = map[string]string{
	"js":                "JavaScript",
	"javascript":        "JavaScript",
	"ecmascript":        "JavaScript",
	"nodejs":            "Node.js",
	"node":              "Node.js",
	"ts":                "TypeScript",
	"typescript":        "TypeScript",
	"reactjs":           "React",
	"react":             "React",
	"nextjs":            "Next.js",
	"next":              "Next.js",
	"vuejs":             "Vue.js",
	"vue":               "Vue.js",
	"nuxtjs":            "Nuxt",
	"angularjs":         "Angular",
	"angular":           "Angular",
	"sveltejs":          "Svelte",
	"svelte":            "Svelte",
	"golang":            "Go",
	"go":                "Go",
	"py":                "Python",
	"python":            "Python",
	"python3":           "Python",
	"rb":                "Ruby",
	"ruby":              "Ruby",
	"rubyonrails":       "Ruby on Rails",
	"rails":             "Ruby on Rails",
	"ror":               "Ruby on Rails",
	"php":               "PHP",
	"laravel":           "Laravel",
	"dotnet":            ".NET",
	"net":               ".NET",
	"csharp":            "C#",
	"cs":                "C#",
	"cplusplus":         "C++",
	"cpp":               "C++",
	"java":              "Java",
	"kotlin":            "Kotlin",
	"swift":             "Swift",
	"objectivec":        "Objective-C",
	"objc":              "Objective-C",
	"rust":              "Rust",
	"rustlang":          "Rust",
	"scala":             "Scala",
	"elixir":            "Elixir",
	"erlang":            "Erlang",
	"postgres":          "PostgreSQL",
	"postgresql":        "PostgreSQL",
	"pgsql":             "PostgreSQL",
	"mysql":             "MySQL",
	"mariadb":           "MariaDB",
	"mssql":             "SQL Server",
	"sqlserver":         "SQL Server",
	"mongo":             "MongoDB",
	"mongodb":           "MongoDB",
	"redis":             "Redis",
	"elasticsearch":     "Elasticsearch",
	"elastic":           "Elasticsearch",
	"kafka":             "Apache Kafka",
	"apachekafka":       "Apache Kafka",
	"rabbitmq":          "RabbitMQ",
	"k8s":               "Kubernetes",
	"kubernetes":        "Kubernetes",
	"kube":              "Kubernetes",
	"docker":            "Docker",
	"terraform":         "Terraform",
	"ansible":           "Ansible",
	"aws":               "AWS",
	"amazonwebservices": "AWS",
	"gcp":               "Google Cloud",
	"googlecloud":       "Google Cloud",
	"azure":             "Azure",
	"microsoftazure":    "Azure",
	"gql":               "GraphQL",
	"graphql":           "GraphQL",
	"grpc":              "gRPC",
	"restapi":           "REST",
	"rest":              "REST",
	"tailwind":          "Tailwind CSS",
	"tailwindcss":       "Tailwind CSS",
	"wordpress":         "WordPress",
	"wp":                "WordPress",
	"shopify":           "Shopify",
	"salesforce":        "Salesforce",
	"sfdc":              "Salesforce",
	"hubspot":           "HubSpot",
	"tensorflow":        "TensorFlow",
	"tf":                "TensorFlow",
	"pytorch":           "PyTorch",
	"scikitlearn":       "scikit-learn",
	"sklearn":           "scikit-learn",
	"springboot":        "Spring Boot",
	"spring":            "Spring Boot",
	"django":            "Django",
	"flask":             "Flask",
	"fastapi":           "FastAPI",
	"expressjs":         "Express",
	"express":           "Express",
	"nestjs":            "NestJS",
	"flutter":           "Flutter",
	"reactnative":       "React Native",
	"snowflake":         "Snowflake",
	"databricks":        "Databricks",
	"bigquery":          "BigQuery",
	"airflow":           "Apache Airflow",
	"apacheairflow":     "Apache Airflow",
	"sparksql":          "Apache Spark",
	"apachespark":       "Apache Spark",
	"spark":             "Apache Spark",
}
