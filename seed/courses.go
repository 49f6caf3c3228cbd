// Package seed carries the static demo catalog served when the hosted
// backend has no course rows. The derived fields (completed counts,
// progress) are consistent with the lesson flags they summarize.
package seed

import (
	"time"

	"amashuri/models"
)

// Courses returns a fresh copy of the demo catalog on every call.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:               "course-1",
			Title:            "Kinyarwanda for Beginners",
			Description:      "Learn the basics of Kinyarwanda language with interactive lessons.",
			ImageURL:         "https://images.unsplash.com/photo-1578450671530-5b6a7c9f32a8?w=800&auto=format&fit=crop",
			Progress:         33,
			TotalLessons:     12,
			CompletedLessons: 4,
			Level:            models.LevelBeginner,
			Instructor:       "Mugisha Jean",
			Category:         "Language",
			Duration:         "8 weeks",
			CreatedAt:        time.Date(2023, 8, 15, 10, 0, 0, 0, time.UTC),
			Lessons: []models.Lesson{
				{
					ID:          "lesson-1-1",
					Title:       "Introduction to Kinyarwanda",
					Description: "Get familiar with Kinyarwanda sounds and greetings.",
					Duration:    "45 min",
					Completed:   true,
					Content:     "Welcome to your first Kinyarwanda lesson! In this lesson, you will learn basic greetings:\n\n- Muraho (Hello)\n- Amakuru? (How are you?)\n- Ni meza (I am fine)\n- Murakoze (Thank you)\n\nPractice these phrases by speaking them out loud.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-1-2",
					Title:       "Basic Conversations",
					Description: "Learn to introduce yourself and have basic conversations.",
					Duration:    "50 min",
					Completed:   true,
					Content:     "In this lesson, you will learn how to introduce yourself:\n\n- Nitwa... (My name is...)\n- Nkomoka... (I am from...)\n- Mfite imyaka... (I am ... years old)\n\nTry to create your own introduction using these phrases.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-1-3",
					Title:       "Numbers and Counting",
					Description: "Learn to count in Kinyarwanda from 1 to 20.",
					Duration:    "40 min",
					Completed:   true,
					Content:     "Let's learn numbers in Kinyarwanda:\n\n1 - Rimwe\n2 - Kabiri\n3 - Gatatu\n4 - Kane\n5 - Gatanu\n6 - Gatandatu\n7 - Karindwi\n8 - Umunani\n9 - Icyenda\n10 - Icumi\n\nPractice counting from 1 to 10 out loud.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-1-4",
					Title:       "Family Vocabulary",
					Description: "Learn vocabulary related to family members.",
					Duration:    "55 min",
					Completed:   true,
					Content:     "Family vocabulary in Kinyarwanda:\n\n- Umuryango (Family)\n- Mama/Nyina (Mother)\n- Papa/Se (Father)\n- Mukuru wanjye (My older sibling)\n- Murumuna wanjye (My younger sibling)\n- Sogokuru (Grandfather)\n- Nyogokuru (Grandmother)\n\nTry to describe your family using these terms.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-1-5",
					Title:       "Common Phrases",
					Description: "Learn everyday phrases used in Rwanda.",
					Duration:    "60 min",
					Completed:   false,
					Content:     "Common phrases in Kinyarwanda:\n\n- Urakoze cyane (Thank you very much)\n- Yego/Oya (Yes/No)\n- Mwirirwe (Good afternoon)\n- Muramuke (Good morning)\n- Murabeho (Goodbye)\n- Ni angahe? (How much is it?)\n\nPractice these phrases in everyday situations.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
			},
			Quizzes: []models.Quiz{
				{
					ID:             "quiz-1-1",
					Title:          "Greetings and Introduction Quiz",
					Description:    "Test your knowledge of basic Kinyarwanda greetings.",
					Completed:      true,
					Score:          80,
					TotalQuestions: 10,
					Questions: []models.Question{
						{
							ID:            "q1-1",
							Question:      `How do you say "Hello" in Kinyarwanda?`,
							Options:       []string{"Murakoze", "Muraho", "Murabeho", "Amakuru"},
							CorrectAnswer: "Muraho",
						},
						{
							ID:            "q1-2",
							Question:      `How do you say "Thank you" in Kinyarwanda?`,
							Options:       []string{"Muraho", "Murabeho", "Murakoze", "Yego"},
							CorrectAnswer: "Murakoze",
						},
						{
							ID:            "q1-3",
							Question:      `"Nitwa John" means:`,
							Options:       []string{"I am fine", "I am from John", "My name is John", "I like John"},
							CorrectAnswer: "My name is John",
						},
					},
				},
				{
					ID:             "quiz-1-2",
					Title:          "Numbers and Family Quiz",
					Description:    "Test your knowledge of numbers and family vocabulary.",
					Completed:      false,
					Score:          0,
					TotalQuestions: 10,
					Questions: []models.Question{
						{
							ID:            "q2-1",
							Question:      `What is the Kinyarwanda word for "five"?`,
							Options:       []string{"Gatanu", "Gatandatu", "Kane", "Gatatu"},
							CorrectAnswer: "Gatanu",
						},
						{
							ID:            "q2-2",
							Question:      `What does "Umuryango" mean?`,
							Options:       []string{"Village", "Friend", "Family", "House"},
							CorrectAnswer: "Family",
						},
						{
							ID:            "q2-3",
							Question:      `The term for "Mother" in Kinyarwanda is:`,
							Options:       []string{"Se", "Nyina", "Sogokuru", "Papa"},
							CorrectAnswer: "Nyina",
						},
					},
				},
			},
		},
		{
			ID:               "course-2",
			Title:            "Traditional Rwandan Art & Crafts",
			Description:      "Explore the rich artistic heritage of Rwanda through traditional crafts, including Imigongo art and basket weaving",
			ImageURL:         "https://cdn.pixabay.com/photo/2016/11/19/15/03/baskets-1839691_1280.jpg",
			Progress:         60,
			TotalLessons:     10,
			CompletedLessons: 6,
			Level:            models.LevelIntermediate,
			Instructor:       "Uwase Marie",
			Category:         "History",
			Duration:         "6 weeks",
			CreatedAt:        time.Date(2023, 9, 10, 14, 30, 0, 0, time.UTC),
			Lessons: []models.Lesson{
				{
					ID:          "lesson-2-1",
					Title:       "Pre-Colonial Rwanda",
					Description: "Learn about Rwanda before European colonization.",
					Duration:    "50 min",
					Completed:   true,
					Content:     "Pre-colonial Rwanda was organized as a monarchy headed by a king (Mwami). The kingdom was well-structured with a complex political system. This lesson explores the social and political organization of Rwanda before colonization.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-2-2",
					Title:       "Colonial Period",
					Description: "Understand the impact of colonialism on Rwanda.",
					Duration:    "55 min",
					Completed:   true,
					Content:     "Rwanda was colonized first by Germany (1884-1916) and then by Belgium (1916-1962). This lesson examines the colonial policies and their long-term effects on Rwandan society and politics.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-2-3",
					Title:       "Independence and Early Republic",
					Description: "Explore Rwanda's journey to independence and the early republic years.",
					Duration:    "45 min",
					Completed:   true,
					Content:     "Rwanda gained independence on July 1, 1962. This lesson covers the independence movement and the challenges faced by the newly formed republic during its early years.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-2-4",
					Title:       "Traditional Arts and Crafts",
					Description: "Discover Rwanda's rich tradition of arts and crafts.",
					Duration:    "40 min",
					Completed:   true,
					Content:     "Rwanda has a rich tradition of arts and crafts, including Imigongo (geometric art), pottery, basketry, and woodcarving. This lesson explores these traditional art forms and their cultural significance.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-2-5",
					Title:       "Rwandan Music and Dance",
					Description: "Experience the vibrant music and dance traditions of Rwanda.",
					Duration:    "60 min",
					Completed:   true,
					Content:     "Rwandan music and dance are integral parts of the culture. This lesson covers traditional instruments, songs, and dances such as Intore, Amaraba, and Ikembe performances.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-2-6",
					Title:       "Modern Rwanda",
					Description: "Understand contemporary Rwanda and its development.",
					Duration:    "65 min",
					Completed:   true,
					Content:     "This lesson focuses on modern Rwanda, its governance, economic development, and vision for the future. Learn about Rwanda's remarkable recovery and progress in recent decades.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
			},
			Quizzes: []models.Quiz{
				{
					ID:             "quiz-2-1",
					Title:          "Pre-Colonial and Colonial Rwanda Quiz",
					Description:    "Test your knowledge of Rwanda's history before independence.",
					Completed:      true,
					Score:          90,
					TotalQuestions: 10,
					Questions: []models.Question{
						{
							ID:            "q3-1",
							Question:      "What was the title of the Rwandan king?",
							Options:       []string{"Sultan", "Mwami", "Emperor", "Chief"},
							CorrectAnswer: "Mwami",
						},
						{
							ID:            "q3-2",
							Question:      "Which European country first colonized Rwanda?",
							Options:       []string{"France", "Britain", "Germany", "Belgium"},
							CorrectAnswer: "Germany",
						},
						{
							ID:            "q3-3",
							Question:      "When did Rwanda gain independence?",
							Options:       []string{"July 1, 1960", "July 1, 1962", "August 4, 1963", "June 27, 1959"},
							CorrectAnswer: "July 1, 1962",
						},
					},
				},
				{
					ID:             "quiz-2-2",
					Title:          "Rwandan Culture and Modern Rwanda Quiz",
					Description:    "Test your knowledge of Rwandan cultural traditions and contemporary Rwanda.",
					Completed:      false,
					Score:          0,
					TotalQuestions: 10,
					Questions: []models.Question{
						{
							ID:            "q4-1",
							Question:      "What is Imigongo?",
							Options:       []string{"A traditional dance", "A traditional food", "Geometric art", "A musical instrument"},
							CorrectAnswer: "Geometric art",
						},
						{
							ID:            "q4-2",
							Question:      "Which traditional dance was performed by warriors?",
							Options:       []string{"Intore", "Ikembe", "Amaraba", "Ingoma"},
							CorrectAnswer: "Intore",
						},
						{
							ID:            "q4-3",
							Question:      `Rwanda is known as the "Land of a Thousand _____"`,
							Options:       []string{"Lakes", "Mountains", "Hills", "Rivers"},
							CorrectAnswer: "Hills",
						},
					},
				},
			},
		},
		{
			ID:               "course-3",
			Title:            "Rwandan Cuisine",
			Description:      "Learn to prepare traditional Rwandan dishes and understand food culture.",
			ImageURL:         "https://images.unsplash.com/photo-1547592180-85f173990554?w=800&auto=format&fit=crop",
			Progress:         13,
			TotalLessons:     8,
			CompletedLessons: 1,
			Level:            models.LevelBeginner,
			Instructor:       "Hakizimana Claude",
			Category:         "Culinary Arts",
			Duration:         "4 weeks",
			CreatedAt:        time.Date(2023, 10, 5, 9, 15, 0, 0, time.UTC),
			Lessons: []models.Lesson{
				{
					ID:          "lesson-3-1",
					Title:       "Introduction to Rwandan Cuisine",
					Description: "Overview of Rwandan food culture and common ingredients.",
					Duration:    "45 min",
					Completed:   true,
					Content:     "Rwandan cuisine is based on local staple foods like plantains, sweet potatoes, beans, and cassava. This lesson introduces you to the food culture of Rwanda and the common ingredients used in traditional cooking.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-3-2",
					Title:       "Cooking Isombe",
					Description: "Learn to prepare Isombe, a popular Rwandan dish made with cassava leaves.",
					Duration:    "55 min",
					Completed:   false,
					Content:     "Isombe is a traditional dish made from cassava leaves cooked with onions, eggplant, and spices. This lesson will guide you through the process of preparing authentic Isombe step by step.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
				{
					ID:          "lesson-3-3",
					Title:       "Preparing Ugali",
					Description: "Learn to cook Ugali, a staple starch dish in Rwanda.",
					Duration:    "35 min",
					Completed:   false,
					Content:     "Ugali (also known as Ubugali in Kinyarwanda) is a staple food made from maize flour and water. This lesson teaches you how to prepare the perfect Ugali with the right consistency.",
					VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
				},
			},
			Quizzes: []models.Quiz{
				{
					ID:             "quiz-3-1",
					Title:          "Rwandan Food Basics Quiz",
					Description:    "Test your knowledge of Rwandan cuisine fundamentals.",
					Completed:      false,
					Score:          0,
					TotalQuestions: 10,
					Questions: []models.Question{
						{
							ID:            "q5-1",
							Question:      "What are the main ingredients of Isombe?",
							Options:       []string{"Rice and beans", "Cassava leaves and spices", "Maize flour and water", "Plantains and meat"},
							CorrectAnswer: "Cassava leaves and spices",
						},
						{
							ID:            "q5-2",
							Question:      "What is Ubugali made from?",
							Options:       []string{"Cassava leaves", "Sweet potatoes", "Maize flour", "Plantains"},
							CorrectAnswer: "Maize flour",
						},
						{
							ID:            "q5-3",
							Question:      "Which beverage is traditionally made from bananas in Rwanda?",
							Options:       []string{"Urwagwa", "Ikivuguto", "Umutobe", "Ikigage"},
							CorrectAnswer: "Urwagwa",
						},
					},
				},
			},
		},
	}
}
