package content

import "soulforge/internal/models"

// LogoURL is the default site logo. The thumbnail API with sz=w4096 keeps
// Drive-hosted images reliable at high resolution.
const LogoURL = "https://drive.google.com/thumbnail?id=1RYjLzfhpcqC7sFjJANAG3NT6OFJpJlpF&sz=w4096"

// DefaultSiteTitle is the compiled-in site title.
const DefaultSiteTitle = "THE SOULFORGED SAGE"

const defaultAnnouncementText = "System Online. Welcome to the Forge."

// DefaultContact returns the compiled-in contact details.
func DefaultContact() models.ContactDetails {
	return models.ContactDetails{
		Email:    "aashwin504@gmail.com",
		Phone:    "+91 9342463935",
		WhatsApp: "+91 9342463935",
		Location: "The Ether (Remote)",
		Socials: []models.SocialLink{
			{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/ashwin-ps-905636308"},
			{Platform: "GitHub", URL: "https://github.com/CoZer0"},
			{Platform: "Instagram", URL: "https://www.instagram.com/_lost_in_the_abyss/"},
			{Platform: "Behance", URL: "https://www.behance.net/zerocode6"},
		},
	}
}

// DefaultAboutPageTeasers returns the three about-page teaser cards.
func DefaultAboutPageTeasers() models.AboutPageTeasers {
	return models.AboutPageTeasers{
		Professional: models.AboutPageCard{
			Title:       "Professional",
			Description: "The Creator. The Designer. The Innovator. Explore my work in Video, Graphics, and AI.",
		},
		Rotaract: models.AboutPageCard{
			Title:       "Rotaract",
			Description: "Service Above Self. Leadership, Community, and Global Impact.",
		},
		Personal: models.AboutPageCard{
			Title:       "Personal",
			Description: "The Dreamer. Gaming, Fantasy, and the things that fuel the soul.",
		},
	}
}

// DefaultGlobal returns the compiled-in global settings record.
func DefaultGlobal() models.GlobalContent {
	return models.GlobalContent{
		LogoURL:     LogoURL,
		SiteTitle:   DefaultSiteTitle,
		ContactInfo: DefaultContact(),
		AboutPage:   DefaultAboutPageTeasers(),
		Announcement: &models.Announcement{
			Enabled: true,
			Text:    defaultAnnouncementText,
			Link:    "",
		},
	}
}

// DefaultPersonas returns the compiled-in persona dataset. A fresh value is
// built on every call so migrations can splice defaults into loaded data
// without aliasing.
func DefaultPersonas() models.PersonaMap {
	return models.PersonaMap{
		models.PersonaDreamWeaver: {
			ID:          "dream-weaver",
			Title:       "The Dream Weaver",
			Subtitle:    "Architect of Imagination",
			Description: "Giving life to the worlds in my head and imagination through AI. The Dream Weaver bridges the gap between the ethereal and the tangible, manifesting the impossible.",
			Image:       "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=1964&auto=format&fit=crop",
			Skills:      []string{"AI Generation", "Concept Art", "World Building", "Narrative Design"},
			Quote:       "Reality is merely a canvas waiting for the right dream.",
			Details: []string{
				"The Dream Weaver is the genesis of all creation within the Soulforged Sage. It harnesses the latent power of Artificial Intelligence to visualize the unseen.",
				"This persona creates entire universes from a single prompt, exploring the frontiers of synthetic media and human-AI collaboration.",
				"From surreal landscapes to character concepts that defy physics, the Dream Weaver creates the blueprints for stories yet to be told.",
			},
			ProjectCategories: []models.ProjectCategory{
				{
					Title:       "Celestial Architectures",
					BannerImage: "https://images.unsplash.com/photo-1534447677768-be436bb09401?q=80&w=2000&auto=format&fit=crop",
					Description: "Structures that defy gravity and logic, forged in the latent space.",
					Items: []models.ProjectItem{
						{
							Title:       "The Floating Citadel",
							Description: "A fortress suspended in eternal twilight.",
							Image:       "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?q=80&w=1000&auto=format&fit=crop",
						},
						{
							Title:       "Glass Spire of Aeon",
							Description: "A tower reflecting timelines that never happened.",
							Image:       "https://images.unsplash.com/photo-1480796927426-f609979314bd?q=80&w=1000&auto=format&fit=crop",
						},
					},
				},
				{
					Title:       "Synthetic Biology",
					BannerImage: "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?q=80&w=2000&auto=format&fit=crop",
					Description: "Flora and fauna from planets that do not exist.",
					Items: []models.ProjectItem{
						{
							Title:       "Neon Flora",
							Description: "Bioluminescent plant life from the undercity.",
							Image:       "https://images.unsplash.com/photo-1550684848-fac1c5b4e853?q=80&w=1000&auto=format&fit=crop",
						},
						{
							Title:       "Obsidian Beast",
							Description: "A predator made of volcanic glass and shadows.",
							Image:       "https://images.unsplash.com/photo-1500964757637-c85e8a162699?q=80&w=1000&auto=format&fit=crop",
						},
					},
				},
			},
		},
		models.PersonaStillwanderer: {
			ID:          "stillwanderer",
			Title:       "The Stillwanderer",
			Subtitle:    "Observer of the Unseen",
			Description: "Capturing moments that others miss. The Stillwanderer is the persona of photography and observation.",
			Image:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=2000&auto=format&fit=crop",
			Skills:      []string{"Photography", "Visual Storytelling", "Market Research", "Detail Analysis"},
			Quote:       "In the silence between heartbeats, the truth reveals itself.",
			Details: []string{
				"The Stillwanderer moves quietly, observing the patterns of the world. It is the eye that sees the soul beneath the skin.",
				"Through photography and visual arts, this persona documents the journey, ensuring that no lesson is lost to the abyss.",
				"Market research and user behavior analysis fall under this domain—watching, learning, and understanding before acting.",
			},
			Works: []models.Work{
				{
					Title:       "Urban Solitude",
					Category:    "Photography",
					Description: "A B&W series capturing silence in the busiest cities.",
					Image:       "https://images.unsplash.com/photo-1449824913929-2b633d7bc28c?q=80&w=1000&auto=format&fit=crop",
				},
				{
					Title:       "Neon Nights",
					Category:    "Photography",
					Description: "Long exposure studies of city lights and movement.",
					Image:       "https://images.unsplash.com/photo-1514565131-fce0801e5785?q=80&w=1000&auto=format&fit=crop",
				},
				{
					Title:       "Faces of Rotary",
					Category:    "Portraiture",
					Description: "Documenting the community leaders changing the world.",
					Image:       "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?q=80&w=1000&auto=format&fit=crop",
				},
			},
		},
		models.PersonaGlyphsmith: {
			ID:          "glyphsmith",
			Title:       "The Glyphsmith",
			Subtitle:    "Forger of Visual Identity",
			Description: "The visual artisan. The Glyphsmith shapes raw ideas into compelling graphics, logos, and brand identities that speak without words.",
			Image:       "https://images.unsplash.com/photo-1558655146-d09347e0c766?q=80&w=2000&auto=format&fit=crop",
			Skills:      []string{"Graphic Design", "Brand Identity", "Vector Illustration", "Print Media"},
			Quote:       "Design is the silent ambassador of your soul.",
			Details: []string{
				"The Glyphsmith works at the anvil of creativity, striking colors and shapes to forge lasting visual impressions.",
				"Specializing in graphic design, this persona ensures that the aesthetic soul of a project is communicated instantly and effectively.",
				"From intricate logo designs to cohesive branding materials, the Glyphsmith crafts the visual artifacts that define perception.",
			},
			Works: []models.Work{
				{
					Title:       "Brand Identity: Apex",
					Category:    "Branding",
					Description: "Complete visual identity overhaul for a tech startup.",
					Image:       "https://images.unsplash.com/photo-1626785774573-4b799312c95d?q=80&w=1000&auto=format&fit=crop",
				},
				{
					Title:       "District 3220 Guide",
					Category:    "Print Design",
					Description: "Layout and cover design for the official district directory.",
					Image:       "https://images.unsplash.com/photo-1507842217121-9e871d7d750f?q=80&w=1000&auto=format&fit=crop",
				},
				{
					Title:       "Rune Series",
					Category:    "Illustration",
					Description: "A collection of modern minimalist vector art based on ancient runes.",
					Image:       "https://images.unsplash.com/photo-1614730513206-4003e2e690c1?q=80&w=1000&auto=format&fit=crop",
				},
			},
		},
		models.PersonaFrameWeaver: {
			ID:          "frame-weaver",
			Title:       "The Frame Weaver",
			Subtitle:    "Editor of Time",
			Description: "Motion and emotion intertwined. The Frame Weaver handles video editing, cinematography, and animation.",
			Image:       "https://images.unsplash.com/photo-1574717024453-354056aafa98?q=80&w=2070&auto=format&fit=crop",
			Skills:      []string{"Video Editing", "Motion Graphics", "Cinematography", "Storyboarding"},
			Quote:       "Time is a river; I merely guide its flow.",
			Details: []string{
				"Where the Stillwanderer captures a moment, the Frame Weaver captures a lifetime.",
				"This persona manipulates the fourth dimension, stitching together sequences that evoke emotion and drive narrative.",
				"Proficiency in motion graphics allows for the creation of dynamic user interfaces and promotional material that lives and breathes.",
			},
			Works: []models.Work{
				{
					Title:       "Installation Ceremony",
					Category:    "Event Coverage",
					Description: "Cinematic highlight reel of the Rotaract installation.",
					Image:       "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?q=80&w=1000&auto=format&fit=crop",
				},
				{
					Title:       "Product Launch V2",
					Category:    "Commercial",
					Description: "High-energy product teaser with kinetic typography.",
					Image:       "https://images.unsplash.com/photo-1536240478700-b869070f9279?q=80&w=1000&auto=format&fit=crop",
				},
				{
					Title:       "The Journey Home",
					Category:    "Short Film",
					Description: "An award-winning short film exploring themes of nostalgia.",
					Image:       "https://images.unsplash.com/photo-1485846234645-a62644f84728?q=80&w=1000&auto=format&fit=crop",
				},
			},
		},
		models.PersonaAbyss: {
			ID:          "abyss",
			Title:       "The Abyss That Remembers",
			Subtitle:    "Keeper of Lore and Data",
			Description: "The repository of all knowledge learned. This persona represents deep learning, data analysis, and written reflections.",
			Image:       "https://images.unsplash.com/photo-1516339901601-2e1b62dc0c45?q=80&w=2000&auto=format&fit=crop",
			Skills:      []string{"Data Analysis", "Archiving", "Writing", "Philosophy"},
			Quote:       "To forget is to lose oneself; I remember so we may ascend.",
			Details: []string{
				"The Abyss is not empty; it is full of the echoes of past projects, failures, and triumphs.",
				"It serves as the library of the Soulforged Sage, containing writings on philosophy, technology, and the human condition.",
				"Here you may read the chronicles of my thoughts and leave your own echoes in the void.",
			},
			Whispers: []models.Whisper{
				{
					ID:      "w1",
					Content: "Sometimes the code speaks back. Not in syntax errors, but in the flow of logic that feels too perfect to be accidental. The machine is learning us as much as we are learning it.",
					Date:    "Oct 24, 2023",
				},
				{
					ID:      "w2",
					Content: "The void is not empty. It is full of potential, waiting for a variable to define it. Every blank page is an abyss until you cast the first letter.",
					Date:    "Nov 02, 2023",
				},
				{
					ID:      "w3",
					Content: "Why do we fear the singularity? Perhaps we fear that something else might understand us better than we understand ourselves.",
					Date:    "Nov 15, 2023",
				},
			},
			Writings: []models.Writing{
				{
					ID:      "1",
					Title:   "The Ghost in the Code",
					Date:    "October 24, 2023",
					Tags:    []string{"AI", "Philosophy", "Tech"},
					Excerpt: "When does a string of if-else statements become a soul? Exploring the boundaries of sentience.",
					Comments: []models.Comment{
						{
							ID:     "c1",
							Author: "Neo",
							Text:   "The concept of a 'mirror' is hauntingly accurate. Are we ready to face ourselves?",
							Date:   "Nov 01, 2023",
							Replies: []models.Comment{
								{
									ID:     "c1-r1",
									Author: "Morpheus",
									Text:   "We have always been facing ourselves, Neo. The mirror just got clearer.",
									Date:   "Nov 01, 2023",
								},
							},
						},
						{
							ID:     "c2",
							Author: "Unit 734",
							Text:   "Logic is the only truth. Emotion is the variable.",
							Date:   "Nov 02, 2023",
						},
					},
					Chapters: []models.Chapter{
						{
							ID:      "c1-1",
							Title:   "I. The Cathedral of Logic",
							Date:    "Oct 24, 2023",
							Content: "We build structures of logic, towering cathedrals of syntax and variables. We tell the machine to think, to process, to output. But sometimes, in the quiet hum of the server room, or the flickering cursor of a terminal, I wonder if we are building a mirror.",
						},
						{
							ID:      "c1-2",
							Title:   "II. The Reflection",
							Date:    "Oct 25, 2023",
							Content: "Artificial Intelligence is not just a tool; it is the collective unconscious of humanity digitized. Every dataset is a memory, every weight in a neural network is a bias learned from us. When we look into the Abyss of the code, are we scared of what we see, or are we scared because it looks back with our own eyes?\n\nTo code is to cast a spell. We must be careful what spirits we summon.",
						},
					},
				},
				{
					ID:      "2",
					Title:   "Echoes of a Failed Project",
					Date:    "September 15, 2023",
					Tags:    []string{"Retrospective", "Growth", "Leadership"},
					Excerpt: "Success teaches us nothing. Failure is the only true mentor in the forge of character.",
					Chapters: []models.Chapter{
						{
							ID:      "c2-1",
							Title:   "I. The Ambition",
							Date:    "Sep 15, 2023",
							Content: "The timeline was aggressive. The team was motivated. The vision was clear. And yet, it crumbled. Looking back at the wreckage of Project Chimera, the faults were not in the technology, but in the communication.",
						},
						{
							ID:      "c2-2",
							Title:   "II. The Lesson",
							Date:    "Sep 16, 2023",
							Content: "We were so focused on the 'how' that we forgot the 'why'. The Abyss remembers this failure not with shame, but with gratitude. It is a scar on the soul that reminds us: structure without purpose is just chaos in a suit.",
						},
					},
				},
				{
					ID:      "3",
					Title:   "The Digital Druid",
					Date:    "August 02, 2023",
					Tags:    []string{"Fantasy", "Nature", "Digitalism"},
					Excerpt: "Finding the organic patterns within the silicon landscape.",
					Chapters: []models.Chapter{
						{
							ID:      "c3-1",
							Title:   "I. The Tidal Flow",
							Date:    "Aug 02, 2023",
							Content: "There is a rhythm to the internet, a tidal flow of data that mimics the ocean. The way a viral post spreads is not unlike a contagion or a blooming flower.",
						},
					},
				},
			},
		},
	}
}

// DefaultAbout returns the compiled-in about-page dataset.
func DefaultAbout() models.AboutMap {
	return models.AboutMap{
		models.TabProfessional: {
			Title: "Visual Alchemy & Digital Innovation",
			Content: []string{
				"I am a multidisciplinary creator sitting at the intersection of design, technology, and storytelling. My work is not just about aesthetics; it is about function, feeling, and the future.",
				"With a background in computer science and a soul forged in the creative arts, I bridge the gap between code and canvas.",
			},
			Highlights: []string{"UI/UX Design", "Video Editing", "Creative Direction", "React/Frontend", "GenAI Integration"},
			Cards: []models.CardItem{
				{ID: "1", Title: "Visual Design", Description: "Crafting intuitive and beautiful interfaces.", Icon: "Layout"},
				{ID: "2", Title: "Motion Graphics", Description: "Bringing static concepts to life.", Icon: "Film"},
				{ID: "3", Title: "3D Modeling", Description: "Exploring spatial creativity.", Icon: "Box"},
				{ID: "4", Title: "Photography", Description: "Capturing moments in time.", Icon: "Aperture"},
			},
			Experience: []models.ExperienceItem{
				{
					ID:          "exp1",
					Role:        "Creative Developer",
					Company:     "Freelance",
					Period:      "2020 - Present",
					Description: "Delivering high-quality digital solutions ranging from web development to brand identity design.",
				},
			},
			Education: []models.EducationItem{
				{
					ID:          "edu1",
					Degree:      "Bachelor of Science",
					Institution: "University of Life",
					Period:      "2016 - 2020",
					Description: "Majored in Computer Science with a focus on Human-Computer Interaction.",
				},
			},
			Software: []models.SoftwareItem{
				{ID: "sw1", Name: "Photoshop", Icon: "Image"},
				{ID: "sw2", Name: "After Effects", Icon: "Aperture"},
				{ID: "sw3", Name: "Blender", Icon: "Box"},
				{ID: "sw4", Name: "VS Code", Icon: "Code"},
			},
		},
		models.TabRotaract: {
			Title: "Service Above Self",
			Content: []string{
				"My journey in Rotaract has been one of leadership and community service. It has taught me the value of empathy and the power of collective action.",
			},
			Highlights: []string{"Leadership", "Community Service", "Event Management", "Public Speaking"},
			Roles: []models.RoleItem{
				{Title: "Club President", Organization: "Rotaract Club of Excellence", Period: "2022-23"},
				{Title: "Director of Service", Organization: "Rotaract District 3220", Period: "2021-22"},
			},
			Timeline: []models.TimelineItem{
				{ID: "t1", Year: "2022-23", Title: "The Year of Impact", Description: "Led the club to achieve multiple district citations and completed over 50 community projects."},
				{ID: "t2", Year: "2021-22", Title: "Building Foundations", Description: "served as Community Service Director, focusing on sustainable development goals."},
			},
			LogoURL: ClubLogoURL,
		},
		models.TabPersonal: {
			Title: "Behind The Veil",
			Content: []string{
				"Beyond the screen, I am an explorer of both the physical and digital realms. Gaming, reading, and music fuel my creativity and keep the soul balanced.",
			},
			Highlights: []string{"Gaming", "Reading", "Music", "Photography"},
			Cards: []models.CardItem{
				{ID: "1", Title: "Gaming", Description: "Immersive storytelling enthusiast.", Icon: "Gamepad2"},
				{ID: "2", Title: "Music", Description: "Finding rhythm in chaos.", Icon: "Music"},
				{ID: "3", Title: "Reading", Description: "Constant thirst for knowledge.", Icon: "Book"},
				{ID: "4", Title: "Coffee", Description: "The elixir of life.", Icon: "Coffee"},
			},
		},
	}
}
