package storage

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careerkit/internal/models"
)

// MongoStorage keeps every collection in one database.
type MongoStorage struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logrus.Logger
}

// Open connects, pings, and prepares indexes. The returned storage must be
// closed at shutdown.
func Open(ctx context.Context, uri, database string, log *logrus.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "could not ping mongodb")
	}

	s := &MongoStorage{
		client: client,
		db:     client.Database(database),
		log:    log,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		log.WithError(err).Warn("could not create indexes")
	}

	log.WithField("database", database).Info("connected to mongodb")
	return s, nil
}

func (s *MongoStorage) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStorage) ensureIndexes(ctx context.Context) error {
	users := s.db.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("comments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	for _, coll := range []string{"resumes", "roadmaps"} {
		_, err = s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Users

func (s *MongoStorage) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()

	if _, err := s.db.Collection("users").InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return errors.Wrap(err, "could not insert user")
	}
	return nil
}

func (s *MongoStorage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch user")
	}
	return &user, nil
}

// Posts

func postQuery(filter models.PostFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"content": rx},
		}
	}
	return query
}

func (s *MongoStorage) Posts(ctx context.Context, filter models.PostFilter, page, limit int) ([]models.Post, int64, error) {
	query := postQuery(filter)
	coll := s.db.Collection("posts")

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not count posts")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not list posts")
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, errors.Wrap(err, "could not decode posts")
	}
	return posts, total, nil
}

func (s *MongoStorage) Post(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := s.db.Collection("posts").FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch post")
	}
	return &post, nil
}

func (s *MongoStorage) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.Likes = []primitive.ObjectID{}
	post.Comments = []primitive.ObjectID{}

	if _, err := s.db.Collection("posts").InsertOne(ctx, post); err != nil {
		return errors.Wrap(err, "could not insert post")
	}
	return nil
}

func (s *MongoStorage) UpdatePost(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":      post.Title,
		"content":    post.Content,
		"category":   post.Category,
		"tags":       post.Tags,
		"updated_at": post.UpdatedAt,
	}}

	res, err := s.db.Collection("posts").UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return errors.Wrap(err, "could not update post")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.Collection("posts").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "could not delete post")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike flips userID's membership in the post's like set. Both updates
// are single-document conditional operations, so concurrent toggles by
// different users cannot lose each other's writes.
func (s *MongoStorage) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	coll := s.db.Collection("posts")

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not remove like")
	}

	if res.MatchedCount == 0 {
		_, err = coll.UpdateOne(ctx,
			bson.M{"_id": postID, "likes": bson.M{"$ne": userID}},
			bson.M{"$addToSet": bson.M{"likes": userID}},
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not add like")
		}
	}

	post, err := s.Post(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *MongoStorage) AppendPostComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	res, err := s.db.Collection("posts").UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	if err != nil {
		return errors.Wrap(err, "could not append comment to post")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Comments

func (s *MongoStorage) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.Likes = []primitive.ObjectID{}

	if _, err := s.db.Collection("comments").InsertOne(ctx, comment); err != nil {
		return errors.Wrap(err, "could not insert comment")
	}
	return nil
}

func (s *MongoStorage) Comment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Collection("comments").FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch comment")
	}
	return &comment, nil
}

func (s *MongoStorage) CommentsByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.db.Collection("comments").Find(ctx, bson.M{"post": postID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "could not list comments")
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, errors.Wrap(err, "could not decode comments")
	}
	return comments, nil
}

// Resumes

func (s *MongoStorage) CreateResume(ctx context.Context, resume *models.Resume) error {
	resume.ID = primitive.NewObjectID()
	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	if _, err := s.db.Collection("resumes").InsertOne(ctx, resume); err != nil {
		return errors.Wrap(err, "could not insert resume")
	}
	return nil
}

func (s *MongoStorage) Resumes(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Resume, int64, error) {
	query := bson.M{"user_id": userID}
	coll := s.db.Collection("resumes")

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not count resumes")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not list resumes")
	}
	defer cursor.Close(ctx)

	resumes := []models.Resume{}
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, 0, errors.Wrap(err, "could not decode resumes")
	}
	return resumes, total, nil
}

func (s *MongoStorage) DeleteResume(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := s.db.Collection("resumes").DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return errors.Wrap(err, "could not delete resume")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Roadmaps

func (s *MongoStorage) CreateRoadmap(ctx context.Context, roadmap *models.Roadmap) error {
	roadmap.ID = primitive.NewObjectID()
	now := time.Now()
	roadmap.CreatedAt = now
	roadmap.UpdatedAt = now

	if _, err := s.db.Collection("roadmaps").InsertOne(ctx, roadmap); err != nil {
		return errors.Wrap(err, "could not insert roadmap")
	}
	return nil
}

func (s *MongoStorage) Roadmaps(ctx context.Context, filter models.RoadmapFilter, page, limit int) ([]models.Roadmap, int64, error) {
	query := bson.M{}
	if filter.JobTitle != "" {
		query["job_title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.JobTitle), Options: "i"}
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}
	if filter.Mine {
		query["user_id"] = filter.UserID
	}

	coll := s.db.Collection("roadmaps")
	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not count roadmaps")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not list roadmaps")
	}
	defer cursor.Close(ctx)

	roadmaps := []models.Roadmap{}
	if err := cursor.All(ctx, &roadmaps); err != nil {
		return nil, 0, errors.Wrap(err, "could not decode roadmaps")
	}
	return roadmaps, total, nil
}

func (s *MongoStorage) Roadmap(ctx context.Context, id primitive.ObjectID) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := s.db.Collection("roadmaps").FindOne(ctx, bson.M{"_id": id}).Decode(&roadmap)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch roadmap")
	}
	return &roadmap, nil
}

func (s *MongoStorage) DeleteRoadmap(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := s.db.Collection("roadmaps").DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return errors.Wrap(err, "could not delete roadmap")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
