package portfolio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Pradyumna2098/Portfolio/views"
)

// LoadProfile reads the portfolio content file. A missing file yields the
// built-in default profile so a fresh checkout serves a complete site.
func LoadProfile(path string) (*views.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile(), nil
		}
		return nil, err
	}
	var p views.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile %s: name is required", path)
	}
	return &p, nil
}

// DefaultProfile returns the built-in portfolio content.
func DefaultProfile() *views.Profile {
	return &views.Profile{
		Name:     "Pradyumna S R",
		Location: "Berlin, Germany",
		Email:    "pradyumnaswara@gmail.com",
		LinkedIn: "linkedin.com/in/pradyumnasr",
		GitHub:   "github.com/Pradyumna2098",
		Summary: "An engineer passionate about intelligent systems and AI solutions, " +
			"with a focus on bridging research and real-world applications. Strong " +
			"background in machine learning, data processing, and AI theory. Values " +
			"interdisciplinary collaboration, continuous learning, and human-centric technology.",
		Skills: views.SkillSet{
			Languages:       []string{"Python", "R", "SWI-Prolog", "Go"},
			Tools:           []string{"TensorFlow", "PyTorch", "OpenCV", "Docker", "Camunda", "YOLO", "MLflow"},
			Specializations: []string{"Computer Vision", "NLP", "NeuroSymbolic AI", "Transfer Learning"},
			SoftSkills:      []string{"Collaboration", "Problem-Solving", "Continuous Learning"},
		},
		Projects: []views.Project{
			{
				Title:       "Real-Life Violence Detection in Videos",
				Description: "Designed a deep learning pipeline to detect violence in video streams using MobileNetV2, with automated blurring for content moderation.",
				Tools:       []string{"Python", "OpenCV", "TensorFlow", "MobileNetV2", "Image Processing"},
			},
			{
				Title:       "Open Source Intelligence Technique for Digital Deception",
				Description: "Researched and authored a paper on detecting deepfake images using OSINT and image processing. Evaluated models using InceptionV3, MobileNetV2, and a custom hybrid architecture.",
				Tools:       []string{"Python", "TensorFlow", "InceptionV3", "MobileNetV2", "Image Processing"},
			},
			{
				Title:       "Hybrid AI for Aerial Object Recognition: A Neurosymbolic Approach",
				Description: "Built a hybrid object detection system using YOLOv8n-OBB and symbolic reasoning (ILP in SWI-Prolog) to reduce false positives.",
				Tools:       []string{"Python", "YOLOv8n-OBB", "ILP", "SWI-Prolog", "NeuroSymbolic AI"},
			},
			{
				Title:       "Pretrained CNN Architectures for Chest X-ray Classification",
				Description: "Implemented transfer learning models (VGG19, DenseNet201) to classify thoracic conditions in chest X-rays. Achieved improved generalization through data augmentation.",
				Tools:       []string{"Python", "TensorFlow", "VGG19", "DenseNet201", "OpenCV", "Transfer Learning"},
			},
		},
		Experience: []views.Experience{
			{
				Title:    "Software Engineer",
				Company:  "Profinch Solutions Pvt Ltd",
				Location: "Bengaluru, Karnataka",
				Duration: "Sept 2020 - Dec 2022",
				Responsibilities: []string{
					"Collaborated with 25+ team members to design scalable software solutions.",
					"Maintained microservices using Docker, improving system reliability.",
					"Implemented a workflow model using Camunda, achieving 30% faster BPMN process development.",
				},
			},
			{
				Title:    "Software Engineer Intern",
				Company:  "Profinch Solutions Pvt Ltd",
				Location: "Bengaluru, Karnataka",
				Duration: "July 2020 - Sept 2020",
				Responsibilities: []string{
					"Analyzed data to optimize system installations and integration with microservices.",
					"Enhanced application functionality by integrating REST APIs and third-party tools.",
					"Created an interactive learning platform for team skill development.",
				},
			},
		},
		Education: []views.Education{
			{
				Institution: "SRH University of Applied Sciences",
				Degree:      "Master's in Computer Science",
				Duration:    "2023 - 2025",
				Focus:       "Big Data and AI",
				Coursework:  []string{"Machine Learning", "Big Data", "Cloud", "AI"},
			},
			{
				Institution: "Maharaja Institute of Technology",
				Degree:      "Bachelor's in Electronics and Communication",
				Duration:    "2016 - 2020",
				Coursework:  []string{"Analog Electronics", "Digital Electronics", "Communication Systems"},
			},
		},
	}
}
