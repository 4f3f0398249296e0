package content

import "servecure/models"

// Built-in fixtures. These mirror the launch content set and are replaced
// wholesale by files in the content directory when present.

var defaultCatalog = []models.ServiceOffering{
	{
		Title:         "Electrician",
		SubServices:   []string{"Fan Installation", "Light Fixture", "Wiring Repair", "Switch Installation"},
		StartingPrice: "₹299",
	},
	{
		Title:         "Plumber",
		SubServices:   []string{"RO Repair", "Pipe Leakage", "Faucet Installation", "Toilet Repair"},
		StartingPrice: "₹399",
	},
	{
		Title:         "Painter",
		SubServices:   []string{"Wall Painting", "Ceiling Paint", "Texture Paint", "Wood Polish"},
		StartingPrice: "₹499",
	},
	{
		Title:         "Carpenter",
		SubServices:   []string{"Furniture Repair", "Door Installation", "Cabinet Making", "Shelving"},
		StartingPrice: "₹349",
	},
	{
		Title:         "House Cleaning",
		SubServices:   []string{"Deep Cleaning", "Regular Cleaning", "Kitchen Cleaning", "Bathroom Cleaning"},
		StartingPrice: "₹199",
	},
	{
		Title:         "AC Service",
		SubServices:   []string{"AC Installation", "AC Repair", "AC Cleaning", "Gas Refill"},
		StartingPrice: "₹449",
	},
}

var defaultJobs = []models.JobListing{
	{
		ID:         "JOB001",
		Title:      "Senior Full Stack Developer",
		Department: "Engineering",
		Location:   "Mumbai, Maharashtra",
		Type:       "Full-time",
		Experience: "3-5 years",
		Salary:     "₹12-18 LPA",
		Skills:     []string{"React", "Node.js", "MongoDB", "AWS"},
		Description: "We are looking for a Senior Full Stack Developer to join our engineering team. " +
			"You will be responsible for developing and maintaining our core platform.",
		Requirements: []string{
			"3+ years of experience in full-stack development",
			"Proficiency in React, Node.js, and databases",
			"Experience with cloud platforms (AWS/Azure)",
		},
		Responsibilities: []string{
			"Develop and maintain web applications",
			"Collaborate with cross-functional teams",
			"Participate in code reviews",
		},
		PostedDate: "2024-01-15",
		IsRemote:   false,
	},
	{
		ID:         "JOB002",
		Title:      "Product Manager",
		Department: "Product",
		Location:   "Bangalore, Karnataka",
		Type:       "Full-time",
		Experience: "4-6 years",
		Salary:     "₹15-22 LPA",
		Skills:     []string{"Product Strategy", "Analytics", "User Research", "Agile"},
		Description: "Join our product team to drive the strategy and development of our service " +
			"marketplace platform.",
		Requirements: []string{
			"4+ years of product management experience",
			"Experience with B2C marketplaces",
			"Experience with data-driven decision making",
		},
		Responsibilities: []string{
			"Define product roadmap and strategy",
			"Conduct user research and analysis",
			"Monitor product metrics and KPIs",
		},
		PostedDate: "2024-01-10",
		IsRemote:   true,
	},
	{
		ID:         "JOB003",
		Title:      "UX/UI Designer",
		Department: "Design",
		Location:   "Delhi, Delhi",
		Type:       "Full-time",
		Experience: "2-4 years",
		Salary:     "₹8-12 LPA",
		Skills:     []string{"Figma", "Adobe Creative Suite", "User Research", "Prototyping"},
		Description: "We're seeking a talented UX/UI Designer to create intuitive and engaging user " +
			"experiences for our service platform.",
		Requirements: []string{
			"2+ years of UX/UI design experience",
			"Proficiency in Figma and design tools",
			"Experience with responsive design",
		},
		Responsibilities: []string{
			"Create user interface designs and prototypes",
			"Conduct user research and usability testing",
			"Maintain design systems and guidelines",
		},
		PostedDate: "2024-01-08",
		IsRemote:   false,
	},
	{
		ID:         "JOB004",
		Title:      "Data Scientist",
		Department: "Data & Analytics",
		Location:   "Hyderabad, Telangana",
		Type:       "Full-time",
		Experience: "3-5 years",
		Salary:     "₹14-20 LPA",
		Skills:     []string{"Python", "Machine Learning", "SQL", "Statistics"},
		Description: "Join our data team to build machine learning models and analytics solutions " +
			"that power our recommendation systems.",
		Requirements: []string{
			"3+ years of data science experience",
			"Strong programming skills in Python/R",
			"Knowledge of statistical analysis",
		},
		Responsibilities: []string{
			"Develop machine learning models",
			"Analyze large datasets for insights",
			"Build recommendation systems",
		},
		PostedDate: "2024-01-12",
		IsRemote:   true,
	},
	{
		ID:         "JOB005",
		Title:      "DevOps Engineer",
		Department: "Engineering",
		Location:   "Pune, Maharashtra",
		Type:       "Full-time",
		Experience: "3-6 years",
		Salary:     "₹12-18 LPA",
		Skills:     []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
		Description: "We're looking for a DevOps Engineer to manage our cloud infrastructure and " +
			"deployment pipelines.",
		Requirements: []string{
			"3+ years of DevOps experience",
			"Experience with containerization (Docker, Kubernetes)",
			"Knowledge of CI/CD pipelines",
		},
		Responsibilities: []string{
			"Manage cloud infrastructure",
			"Set up and maintain CI/CD pipelines",
			"Automate deployment processes",
		},
		PostedDate: "2024-01-14",
		IsRemote:   false,
	},
	{
		ID:         "JOB006",
		Title:      "Digital Marketing Manager",
		Department: "Marketing",
		Location:   "Mumbai, Maharashtra",
		Type:       "Full-time",
		Experience: "4-7 years",
		Salary:     "₹10-15 LPA",
		Skills:     []string{"Digital Marketing", "SEO", "SEM", "Analytics"},
		Description: "Lead our digital marketing efforts to drive user acquisition and brand " +
			"awareness across multiple channels.",
		Requirements: []string{
			"4+ years of digital marketing experience",
			"Experience with Google Ads and Facebook Ads",
			"Knowledge of SEO and content marketing",
		},
		Responsibilities: []string{
			"Develop and execute digital marketing strategies",
			"Manage paid advertising campaigns",
			"Analyze campaign performance and ROI",
		},
		PostedDate: "2024-01-09",
		IsRemote:   true,
	},
	{
		ID:         "JOB007",
		Title:      "Customer Success Manager",
		Department: "Customer Success",
		Location:   "Bangalore, Karnataka",
		Type:       "Full-time",
		Experience: "2-4 years",
		Salary:     "₹6-10 LPA",
		Skills:     []string{"Customer Success", "Communication", "CRM", "Analytics"},
		Description: "Help our customers achieve success with our platform, working directly with " +
			"service providers and customers.",
		Requirements: []string{
			"2+ years in customer success or account management",
			"Experience with CRM systems",
			"Understanding of SaaS metrics",
		},
		Responsibilities: []string{
			"Manage customer relationships and onboarding",
			"Analyze customer health and usage metrics",
			"Handle escalations and resolve issues",
		},
		PostedDate: "2024-01-11",
		IsRemote:   false,
	},
	{
		ID:         "JOB008",
		Title:      "Mobile App Developer (React Native)",
		Department: "Engineering",
		Location:   "Chennai, Tamil Nadu",
		Type:       "Full-time",
		Experience: "2-5 years",
		Salary:     "₹8-14 LPA",
		Skills:     []string{"React Native", "JavaScript", "iOS", "Android"},
		Description: "Join our mobile team to build and enhance our React Native applications for " +
			"iOS and Android platforms.",
		Requirements: []string{
			"2+ years of React Native development",
			"Experience with mobile app deployment",
			"Understanding of mobile UX principles",
		},
		Responsibilities: []string{
			"Develop mobile applications using React Native",
			"Optimize app performance and user experience",
			"Handle app store submissions and updates",
		},
		PostedDate: "2024-01-13",
		IsRemote:   true,
	},
}

var defaultTestimonials = []models.Testimonial{
	{
		Name:     "Priya Sharma",
		Rating:   5,
		Comment:  "Amazing service! The electrician was professional and fixed my fan in 30 minutes. Very satisfied with the quality of work.",
		Service:  "Electrician",
		Location: "Mumbai",
	},
	{
		Name:     "Raj Patel",
		Rating:   5,
		Comment:  "Quick response and fair pricing. The plumber arrived on time and solved my pipe leakage issue efficiently.",
		Service:  "Plumber",
		Location: "Delhi",
	},
	{
		Name:     "Anita Gupta",
		Rating:   4,
		Comment:  "Great painting job! They completed my living room in just 2 days. The finish quality is excellent.",
		Service:  "Painter",
		Location: "Bangalore",
	},
	{
		Name:     "Vikram Singh",
		Rating:   5,
		Comment:  "Professional cleaning service. My house looks spotless now. Will definitely book again for monthly cleaning.",
		Service:  "House Cleaning",
		Location: "Pune",
	},
}

var defaultFAQs = []models.FAQ{
	{
		Question: "How do I book a service?",
		Answer:   "Simply click the 'Book Service' button, fill out our booking form with your details (name, phone, address, preferred date and time), and submit. We'll contact you to confirm the appointment and match you with a verified technician.",
	},
	{
		Question: "What payment options are available?",
		Answer:   "We accept UPI, Credit/Debit Cards, Net Banking, and Cash on Delivery. All online payments are secure and encrypted with 256-bit SSL protection.",
	},
	{
		Question: "How are technicians verified?",
		Answer:   "All technicians undergo rigorous background verification, skill assessment, document verification, and police verification before joining our platform.",
	},
	{
		Question: "What if I'm not satisfied with the service?",
		Answer:   "We offer 100% satisfaction guarantee. If you're not happy with the service, we'll send another technician for free or provide a full refund within 24 hours.",
	},
	{
		Question: "Can I reschedule my appointment?",
		Answer:   "Yes, you can reschedule up to 2 hours before the appointment time without any charges through our app or website.",
	},
	{
		Question: "Do you provide warranty on services?",
		Answer:   "Yes, we provide 30-day service warranty on all our services. If any issue occurs within 30 days, we'll fix it for free.",
	},
}

var defaultStats = []models.Stat{
	{Value: "₹25,000+", Label: "Average Monthly Earnings"},
	{Value: "10,000+", Label: "Active Professionals"},
	{Value: "4.9/5", Label: "Professional Rating"},
	{Value: "100%", Label: "Verified Professionals"},
}
